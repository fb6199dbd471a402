package main

import (
	"flag"
	"log"
	"net/http"
	"time"

	"github.com/eragame/erachange/internal/api"
	"github.com/eragame/erachange/internal/server"
)

func main() {
	addr := flag.String("addr", ":3000", "listen address")
	flag.Parse()

	world := api.NewSeededFake()
	srv := &http.Server{
		Addr:         *addr,
		Handler:      server.NewRouter(world),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Printf("demo game server listening on %s", *addr)
	log.Fatal(srv.ListenAndServe())
}
