// Package main provides a CLI tool for seeding the database with
// schema and demo data.
package main

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"time"

	appctx "minipos/internal/core/context"
	"minipos/internal/core/types"
	"minipos/internal/domain/auth"
	"minipos/internal/domain/catalogs/client"
	"minipos/internal/domain/catalogs/point"
	"minipos/internal/domain/catalogs/product"
	"minipos/internal/domain/documents/receipt"
	"minipos/internal/infrastructure/storage/postgres"
	"minipos/internal/infrastructure/storage/postgres/auth_repo"
	"minipos/internal/infrastructure/storage/postgres/catalog_repo"
	"minipos/internal/infrastructure/storage/postgres/document_repo"
	"minipos/pkg/logger"
	"minipos/pkg/numerator"
)

//go:embed schema.sql
var schemaSQL string

func main() {
	log, err := logger.New(logger.Config{
		Level:       "info",
		Development: true,
	})
	if err != nil {
		fmt.Printf("failed to create logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL environment variable is required")
	}

	pool, err := postgres.NewPool(ctx, postgres.DefaultPoolConfig(dbURL))
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()
	log.Info("connected to database")

	if os.Getenv("SKIP_SCHEMA") != "true" {
		if _, err := pool.Exec(ctx, schemaSQL); err != nil {
			log.Fatalw("failed to apply schema", "error", err)
		}
		log.Info("schema applied")
	}

	var userCount int64
	if err := pool.QueryRow(ctx, "SELECT count(*) FROM users").Scan(&userCount); err != nil {
		log.Fatalw("failed to check users", "error", err)
	}
	if userCount > 0 {
		log.Info("database already seeded, nothing to do")
		return
	}

	if err := seed(ctx, pool, log); err != nil {
		log.Fatalw("seeding failed", "error", err)
	}

	log.Info("seeding completed successfully")
}

func seed(ctx context.Context, pool *postgres.Pool, log *logger.Logger) error {
	txManager := postgres.NewTxManager(pool)

	pointService := point.NewService(catalog_repo.NewPointRepo(txManager), txManager, nil)
	productService := product.NewService(catalog_repo.NewProductRepo(txManager), txManager, nil)
	clientService := client.NewService(catalog_repo.NewClientRepo(txManager), txManager, nil)
	userRepo := auth_repo.NewUserRepo(txManager)

	jwtService := auth.NewJWTService(auth.DefaultJWTConfig("seed-only"))
	authService := auth.NewService(userRepo, jwtService, txManager)

	// --- Points ---
	mainPoint := point.New(`Магазин "Ак-Орго"`)
	mainPoint.Address = "г. Бишкек, ул. Чуй 123"
	if err := pointService.Create(ctx, mainPoint); err != nil {
		return fmt.Errorf("create point: %w", err)
	}

	secondPoint := point.New(`Магазин "Ак-Орго 2"`)
	secondPoint.Address = "г. Бишкек, ул. Московская 45"
	if err := pointService.Create(ctx, secondPoint); err != nil {
		return fmt.Errorf("create point: %w", err)
	}
	log.Info("points created")

	// --- Users ---
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = "Admin123!"
	}

	admin, err := authService.CreateUser(ctx, "admin@minipos.kg", adminPassword, "Максат Каныбеков", auth.RoleAdmin, mainPoint.ID)
	if err != nil {
		return fmt.Errorf("create admin: %w", err)
	}

	cashier, err := authService.CreateUser(ctx, "cashier@minipos.kg", "Cashier123!", "Бекет Асанов", auth.RoleCashier, mainPoint.ID)
	if err != nil {
		return fmt.Errorf("create cashier: %w", err)
	}

	if _, err := authService.CreateUser(ctx, "owner@minipos.kg", "Owner123!", "Гульнара Токтогулова", auth.RoleOwner, mainPoint.ID); err != nil {
		return fmt.Errorf("create owner: %w", err)
	}
	log.Infow("users created", "admin_id", admin.ID)

	// --- Products ---
	type seedProduct struct {
		name     string
		price    string
		category string
		isFast   bool
		barcode  string
	}

	seedProducts := []seedProduct{
		{"Хлеб белый", "30", "Хлебобулочные", true, "4870001000011"},
		{"Молоко 1л", "65", "Молочные", true, "4870001000028"},
		{"Яйца 10шт", "120", "Продукты", false, ""},
		{"Масло подсолнечное 1л", "150", "Продукты", false, "4870001000042"},
		{"Чай черный", "85", "Напитки", true, ""},
		{"Сахар 1кг", "70", "Продукты", false, ""},
		{"Мука 1кг", "50", "Продукты", false, ""},
		{"Вода 1.5л", "25", "Напитки", true, "4870001000080"},
	}

	products := make([]*product.Product, 0, len(seedProducts))
	for _, sp := range seedProducts {
		p := product.New(mainPoint.ID, sp.name, types.MustMoney(sp.price))
		p.Category = sp.category
		p.IsFast = sp.isFast
		if sp.barcode != "" {
			barcode := sp.barcode
			p.Barcode = &barcode
		}
		if err := productService.Create(ctx, p); err != nil {
			return fmt.Errorf("create product %q: %w", sp.name, err)
		}
		products = append(products, p)
	}
	log.Infow("products created", "count", len(products))

	// --- Clients ---
	regular := client.New("Азамат Калыков")
	regular.Phone = "+996555123456"
	regular.Notes = "Постоянный клиент"
	if err := clientService.Create(ctx, regular); err != nil {
		return fmt.Errorf("create client: %w", err)
	}

	vip := client.New("Динара Саматова")
	vip.Phone = "+996777987654"
	vip.Notes = "VIP клиент"
	if err := clientService.Create(ctx, vip); err != nil {
		return fmt.Errorf("create client: %w", err)
	}
	log.Info("clients created")

	if os.Getenv("SEED_DEMO_DATA") != "true" {
		return nil
	}

	// --- Demo receipts ---
	receiptService := receipt.NewService(
		document_repo.NewReceiptRepo(txManager),
		numerator.New(pool),
		txManager,
		nil,
	)

	cashierCtx := appctx.WithUser(ctx, &appctx.UserContext{
		UserID:  cashier.ID.String(),
		PointID: mainPoint.ID.String(),
		Email:   cashier.Email,
		Name:    cashier.Name,
		Role:    string(cashier.Role),
	})

	type seedLine struct {
		product *product.Product
		qty     string
	}

	demoReceipts := []struct {
		lines    []seedLine
		discount string
		payment  receipt.PaymentType
		client   *client.Client
		daysAgo  int
	}{
		{[]seedLine{{products[0], "2"}, {products[1], "1"}}, "0", receipt.PaymentCash, nil, 0},
		{[]seedLine{{products[4], "3"}, {products[7], "4"}}, "10", receipt.PaymentQR, regular, 1},
		{[]seedLine{{products[2], "1"}, {products[5], "2"}}, "0", receipt.PaymentCash, nil, 2},
		{[]seedLine{{products[3], "1"}, {products[6], "2"}}, "50", receipt.PaymentQR, vip, 5},
	}

	for i, dr := range demoReceipts {
		doc := receipt.New(mainPoint.ID, cashier.ID)
		doc.PaymentType = dr.payment
		doc.Discount = types.MustMoney(dr.discount)
		if dr.client != nil {
			clientID := dr.client.ID
			doc.ClientID = &clientID
			doc.ClientName = dr.client.Name
		}
		for _, line := range dr.lines {
			doc.AddItem(line.product.ID, line.product.Name, types.MustMoney(line.qty), line.product.Price)
		}
		doc.CreatedAt = time.Now().UTC().AddDate(0, 0, -dr.daysAgo)
		doc.UpdatedAt = doc.CreatedAt

		if err := receiptService.Create(cashierCtx, doc); err != nil {
			return fmt.Errorf("create demo receipt %d: %w", i+1, err)
		}
	}
	log.Infow("demo receipts created", "count", len(demoReceipts))

	return nil
}
