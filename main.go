package main

import (
	"log"
	"net/http"
	"os"

	"github.com/andikanugraha/go-multistore/app/cmd"
	"github.com/andikanugraha/go-multistore/app/configs"
	"github.com/andikanugraha/go-multistore/app/routes"
)

func main() {

	env := configs.LoadEnv()
	if len(os.Args) > 1 {
		cmd.RunCli()
		return
	}

	if env.WebhookSecret == "" {
		log.Println("Warning: IDENTITY_WEBHOOK_SECRET is empty; identity webhook requests will be rejected.")
	}

	db, err := configs.OpenConnection()
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}
	log.Println("✅ Database connected.")

	router := routes.NewRouter(db)

	server := http.Server{
		Addr:    env.Port,
		Handler: router,
	}

	log.Printf("🚀 Server starting on %s", server.Addr)
	if err := server.ListenAndServe(); err != nil {
		log.Println("failed to connecting to the server")
	}

}
