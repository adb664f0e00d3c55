package main

import (
	"database/sql"
	"log"
	"net/http"

	"github.com/redis/go-redis/v9"

	"synapseBack/internal/config"
	"synapseBack/internal/handlers"
	"synapseBack/internal/repositories"
	"synapseBack/internal/services"
	"synapseBack/utils"
)

type application struct {
	errorLog *log.Logger
	infoLog  *log.Logger
	db       *sql.DB

	tokenManager *utils.Manager
	userRepo     *repositories.UserRepository

	userHandler          *handlers.UserHandler
	eventHandler         *handlers.EventHandler
	categoryHandler      *handlers.CategoryHandler
	concertHandler       *handlers.ConcertHandler
	artistHandler        *handlers.ArtistHandler
	sponsorHandler       *handlers.SponsorHandler
	productHandler       *handlers.ProductHandler
	accommodationHandler *handlers.AccommodationHandler
	registrationHandler  *handlers.RegistrationHandler
	paymentHandler       *handlers.PaymentHandler
	orderHandler         *handlers.OrderHandler
	uploadHandler        *handlers.UploadHandler
}

func initializeApp(cfg config.Config, db *sql.DB, errorLog, infoLog *log.Logger) (*application, error) {
	tokenManager, err := utils.NewManager(cfg.JWT.SigningKey)
	if err != nil {
		return nil, err
	}

	var cache *redis.Client
	if cfg.Redis.Addr != "" {
		cache = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	}

	// Repositories
	userRepo := repositories.UserRepository{DB: db}
	eventRepo := repositories.EventRepository{DB: db}
	categoryRepo := repositories.CategoryRepository{DB: db}
	concertRepo := repositories.ConcertRepository{DB: db}
	artistRepo := repositories.ArtistRepository{DB: db}
	sponsorRepo := repositories.SponsorRepository{DB: db}
	productRepo := repositories.ProductRepository{DB: db}
	accommodationRepo := repositories.AccommodationRepository{DB: db}
	registrationRepo := repositories.RegistrationRepository{DB: db}
	orderRepo := repositories.OrderRepository{DB: db}

	// Services
	userService := &services.UserService{UserRepo: &userRepo, TokenManager: tokenManager}
	eventService := &services.EventService{EventRepo: &eventRepo}
	categoryService := &services.CategoryService{CategoryRepo: &categoryRepo}
	concertService := &services.ConcertService{ConcertRepo: &concertRepo}
	artistService := &services.ArtistService{ArtistRepo: &artistRepo}
	sponsorService := &services.SponsorService{SponsorRepo: &sponsorRepo}
	productService := &services.ProductService{ProductRepo: &productRepo, Cache: cache}
	accommodationService := &services.AccommodationService{AccommodationRepo: &accommodationRepo}
	registrationService := &services.RegistrationService{RegistrationRepo: &registrationRepo, EventRepo: &eventRepo}
	orderService := &services.OrderService{OrderRepo: &orderRepo}

	gateway, err := services.NewRazorpayService(services.RazorpayConfig{
		KeyID:     cfg.Razorpay.KeyID,
		KeySecret: cfg.Razorpay.KeySecret,
		BaseURL:   cfg.Razorpay.BaseURL,
	})
	if err != nil {
		return nil, err
	}
	checkoutService := &services.CheckoutService{
		Products:  productService,
		Gateway:   gateway,
		OrderRepo: &orderRepo,
		ErrorLog:  errorLog,
	}

	storage := &utils.Storage{
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		Bucket:    cfg.Storage.Bucket,
		Region:    cfg.Storage.Region,
		Endpoint:  cfg.Storage.Endpoint,
	}

	// Handlers
	userHandler := &handlers.UserHandler{Service: userService}
	eventHandler := &handlers.EventHandler{Service: eventService}
	categoryHandler := &handlers.CategoryHandler{Service: categoryService}
	concertHandler := &handlers.ConcertHandler{Service: concertService}
	artistHandler := &handlers.ArtistHandler{Service: artistService}
	sponsorHandler := &handlers.SponsorHandler{Service: sponsorService}
	productHandler := &handlers.ProductHandler{Service: productService}
	accommodationHandler := &handlers.AccommodationHandler{Service: accommodationService}
	registrationHandler := &handlers.RegistrationHandler{Service: registrationService}
	paymentHandler := &handlers.PaymentHandler{Service: checkoutService}
	orderHandler := &handlers.OrderHandler{Service: orderService}
	uploadHandler := &handlers.UploadHandler{Storage: storage}

	return &application{
		errorLog:             errorLog,
		infoLog:              infoLog,
		db:                   db,
		tokenManager:         tokenManager,
		userRepo:             &userRepo,
		userHandler:          userHandler,
		eventHandler:         eventHandler,
		categoryHandler:      categoryHandler,
		concertHandler:       concertHandler,
		artistHandler:        artistHandler,
		sponsorHandler:       sponsorHandler,
		productHandler:       productHandler,
		accommodationHandler: accommodationHandler,
		registrationHandler:  registrationHandler,
		paymentHandler:       paymentHandler,
		orderHandler:         orderHandler,
		uploadHandler:        uploadHandler,
	}, nil
}

func openDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		log.Printf("Failed to open DB: %v", err)
		return nil, err
	}
	if err = db.Ping(); err != nil {
		log.Printf("Failed to ping DB: %v", err)
		return nil, err
	}
	db.SetMaxIdleConns(35)
	log.Println("Successfully connected to database")
	return db, nil
}

func addSecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cross-Origin-Opener-Policy", "same-origin")
		w.Header().Set("Cross-Origin-Resource-Policy", "same-origin")
		next.ServeHTTP(w, r)
	})
}
