package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"web3explorer/config"
	"web3explorer/handlers"
	"web3explorer/repository"
	"web3explorer/service"
	"web3explorer/storage"
	"web3explorer/walletconn"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
)

func main() {
	ctx := context.Background()

	cfg := config.LoadConfigOrPanic()

	store := initStore(ctx, cfg)

	repo := repository.NewKVRepository(store)
	if err := repo.Seed(ctx); err != nil {
		log.Fatalf("Ошибка заполнения демо-данными: %v", err)
	}

	svc := service.NewService(repo, service.RealClock{}, service.LogNotifier{}, cfg.JWTSecret, cfg.Latency)

	chain := walletconn.NewSimulatedChain(time.Now())
	connector := walletconn.NewConnector(chain)

	h := handlers.NewHandler(svc, connector, cfg.JWTSecret)

	r := mux.NewRouter()
	h.Register(r)

	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if _, err := w.Write([]byte("Добро пожаловать в Web3 Explorer API")); err != nil {
			log.Printf("Ошибка при записи ответа: %v", err)
		}
	}).Methods("GET")

	srv := http.Server{
		Handler:      r,
		Addr:         ":" + cfg.ServerPort,
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}
	log.Printf("Сервер запущен на порту %s (хранилище: %s)", cfg.ServerPort, cfg.StorageDriver)
	if err := srv.ListenAndServe(); err != nil {
		log.Fatal(err)
	}
}

func initStore(ctx context.Context, cfg config.Config) storage.Store {
	switch cfg.StorageDriver {
	case "postgres":
		db := config.InitDB(ctx, cfg)
		pg := storage.NewPostgresStore(db)
		if err := pg.Init(ctx); err != nil {
			log.Fatalf("Ошибка инициализации схемы БД: %v", err)
		}
		return pg
	case "redis":
		rs, err := storage.NewRedisStore(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			log.Fatalf("Ошибка подключения к Redis: %v", err)
		}
		return rs
	default:
		fs, err := storage.NewFileStore(cfg.DataFile)
		if err != nil {
			log.Fatalf("Ошибка открытия файла данных: %v", err)
		}
		return fs
	}
}
