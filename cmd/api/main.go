package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // PostgreSQL драйвер

	"github.com/pollishmaster/travel-photobook/internal/handler"
	"github.com/pollishmaster/travel-photobook/internal/repository"
	"github.com/pollishmaster/travel-photobook/internal/service"
)

func main() {
	// Читаем параметры подключения к БД из переменных окружения
	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbUser := os.Getenv("DB_USER")
	dbPass := os.Getenv("DB_PASS")
	dbName := os.Getenv("DB_NAME")
	if dbHost == "" {
		dbHost = "localhost"
	}
	if dbPort == "" {
		dbPort = "5432"
	}
	dsn := "host=" + dbHost + " port=" + dbPort + " user=" + dbUser + " password=" + dbPass + " dbname=" + dbName + " sslmode=disable"
	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		log.Fatalf("Не удалось подключиться к базе данных: %v", err)
	}
	// Выполняем миграции (если есть)
	files, err := filepath.Glob("migrations/*.sql")
	if err == nil {
		for _, file := range files {
			if _, err := db.Exec("BEGIN"); err != nil {
				log.Printf("Ошибка при инициации транзакции миграции: %v", err)
				continue
			}
			err := func() error {
				content, readErr := os.ReadFile(file)
				if readErr != nil {
					return readErr
				}
				if _, execErr := db.Exec(string(content)); execErr != nil {
					return execErr
				}
				return nil
			}()
			if err != nil {
				log.Printf("Миграция %s завершилась ошибкой: %v", file, err)
				db.Exec("ROLLBACK")
			} else {
				db.Exec("COMMIT")
				log.Printf("Миграция %s применена.", file)
			}
		}
	}

	// Инициализируем репозитории
	userRepo := repository.NewUserRepository(db)
	tripRepo := repository.NewTripRepository(db)
	photoRepo := repository.NewPhotoRepository(db)
	countryRepo := repository.NewCountryRepository(db)
	noteRepo := repository.NewNoteRepository(db)
	documentRepo := repository.NewDocumentRepository(db)
	layoutRepo := repository.NewLayoutRepository(db)
	// Инициализируем сервисы
	authService := service.NewAuthService(userRepo)
	tripService := service.NewTripService(tripRepo, photoRepo, documentRepo, countryRepo)
	photoService := service.NewPhotoService(photoRepo)
	countryService := service.NewCountryService(countryRepo)
	noteService := service.NewNoteService(noteRepo)
	documentService := service.NewDocumentService(documentRepo)
	layoutService := service.NewLayoutService(layoutRepo, photoRepo)
	bookService := service.NewBookService(tripRepo, photoRepo, countryRepo, noteRepo, layoutRepo)

	// Создаем Handler и регистрируем маршруты
	h := handler.NewHandler(authService, tripService, photoService, countryService,
		noteService, documentService, layoutService, bookService)
	router := gin.Default()
	h.RegisterRoutes(router)

	// Запускаем HTTP-сервер
	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Ошибка запуска сервера: %v", err)
	}
}
