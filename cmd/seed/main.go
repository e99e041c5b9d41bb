package main

import (
	"flag"
	"log"

	"github.com/mestakip/tiretrack/internal/config"
	"github.com/mestakip/tiretrack/internal/inventory/domain"
	"github.com/mestakip/tiretrack/internal/inventory/repository"
	"github.com/mestakip/tiretrack/pkg/database"
)

// Loads the demo data set used for local development and screenshots.
func main() {
	ownerID := flag.Uint("owner", 1, "owner user id for the seeded rows")
	flag.Parse()

	cfg := config.Load()
	db, err := database.NewGormConnection(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	repo := repository.NewGormRecordRepository(db)
	if err := repo.AutoMigrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	records := sampleRecords(*ownerID)
	for i := range records {
		records[i].Normalize()
		if err := repo.Create(&records[i]); err != nil {
			log.Fatalf("Failed to seed record %d: %v", i, err)
		}
	}
	log.Printf("Seeded %d records for owner %d", len(records), *ownerID)
}

func sampleRecords(ownerID uint) []domain.TireRecord {
	records := []domain.TireRecord{
		{Counterparty: "Yilmaz Auto", Product: "205/55 R16", Brand: "Michelin", Group: domain.GroupPassenger, Season: domain.SeasonSummer, Quantity: 4, UnitPrice: 120, TotalPrice: 480, Status: domain.StatusReviewed, Warehouse: domain.WarehouseSales, Payment: domain.PaymentCard},
		{Counterparty: "Demir Logistics", Product: "315/80 R22.5", Brand: "Goodyear", Group: domain.GroupCommercial, Season: domain.SeasonAllSeason, Quantity: 8, UnitPrice: 310, TotalPrice: 2480, Status: domain.StatusReviewed, Warehouse: domain.WarehouseStock, Payment: domain.PaymentBankTransfer},
		{Counterparty: "Kaya Garage", Product: "195/65 R15", Brand: "Lassa", Group: domain.GroupPassenger, Season: domain.SeasonWinter, Quantity: 4, UnitPrice: 85, TotalPrice: 340, Status: domain.StatusDelivered, Warehouse: domain.WarehouseSales, Payment: domain.PaymentOpenAccount},
		{Counterparty: "Aslan Transport", Product: "385/65 R22.5", Brand: "Bridgestone", Group: domain.GroupCommercial, Season: domain.SeasonSummer, Quantity: 2, UnitPrice: 420, TotalPrice: 840, Status: domain.StatusInProgress, Warehouse: domain.WarehouseStock, Payment: domain.PaymentBankTransfer},
		{Counterparty: "Ozturk Fleet", Product: "225/45 R17", Brand: "Pirelli", Group: domain.GroupPassenger, Season: domain.SeasonSummer, Quantity: 4, UnitPrice: 150, TotalPrice: 600, Status: domain.StatusEnRoute, Warehouse: domain.WarehouseSales, Payment: domain.PaymentCard},
		{Counterparty: "Celik Motors", Product: "12V 72Ah", Brand: "Varta", Group: domain.GroupBattery, Quantity: 6, UnitPrice: 95, TotalPrice: 570, Status: domain.StatusDelivered, Warehouse: domain.WarehouseStock, Payment: domain.PaymentCard},
		{Counterparty: "Sahin Trucks", Product: "315/70 R22.5", Brand: "Continental", Group: domain.GroupCommercial, Season: domain.SeasonWinter, Quantity: 6, UnitPrice: 380, TotalPrice: 2280, Status: domain.StatusEnRoute, Warehouse: domain.WarehouseStock, Payment: domain.PaymentOpenAccount},
		{Counterparty: "Arslan Rent-a-Car", Product: "215/60 R16", Brand: "michelin", Group: domain.GroupPassenger, Season: domain.SeasonAllSeason, Quantity: 8, UnitPrice: 135, TotalPrice: 1080, Status: domain.StatusReviewed, Warehouse: domain.WarehouseSales, Payment: domain.PaymentBankTransfer},
		{Counterparty: "Dogan Taxi", Product: "185/65 R15", Brand: "Petlas", Group: domain.GroupPassenger, Season: domain.SeasonSummer, Quantity: 4, UnitPrice: 70, TotalPrice: 280, Status: domain.StatusInProgress, Warehouse: domain.WarehouseSales, Payment: domain.PaymentCard},
		{Counterparty: "Kurt Construction", Product: "17.5-25 L2", Brand: "BKT", Group: domain.GroupCommercial, Season: domain.SeasonAllSeason, Quantity: 2, UnitPrice: 890, TotalPrice: 1780, Status: domain.StatusEnRoute, Warehouse: domain.WarehouseStock, Payment: domain.PaymentOpenAccount},
		{Counterparty: "Yildiz Service", Product: "Steel wheel 16\"", Brand: "Kronprinz", Group: domain.GroupWheel, Quantity: 8, UnitPrice: 45, TotalPrice: 360, Status: domain.StatusDelivered, Warehouse: domain.WarehouseStock, Payment: domain.PaymentCard},
		{Counterparty: "Erdogan Farm", Product: "380/70 R24", Brand: "Trelleborg", Group: domain.GroupCommercial, Season: domain.SeasonSummer, Quantity: 2, UnitPrice: 520, TotalPrice: 1040, Status: domain.StatusReviewed, Warehouse: domain.WarehouseSales, Payment: domain.PaymentBankTransfer},
		{Counterparty: "Aydin Bus Co", Product: "295/80 R22.5", Brand: "Goodyear", Group: domain.GroupCommercial, Season: domain.SeasonWinter, Quantity: 6, UnitPrice: 350, TotalPrice: 2100, Status: domain.StatusCancelled, CancelReason: "ordered wrong size", Warehouse: domain.WarehouseStock, Payment: domain.PaymentOpenAccount},
		{Counterparty: "Polat Dealer", Product: "235/35 R19", Brand: "Pirelli", Group: domain.GroupPassenger, Season: domain.SeasonSummer, Quantity: 4, UnitPrice: 210, TotalPrice: 840, Status: domain.StatusEnRoute, Warehouse: domain.WarehouseSales, Payment: domain.PaymentCard, Featured: true},
		{Counterparty: "Gunes Minibus", Product: "12V 100Ah", Brand: "Mutlu", Group: domain.GroupBattery, Quantity: 2, UnitPrice: 140, TotalPrice: 280, Status: domain.StatusDelivered, Warehouse: domain.WarehouseSales, Payment: domain.PaymentBankTransfer},
	}
	for i := range records {
		records[i].OwnerID = ownerID
	}
	return records
}
