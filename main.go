package main

import (
	"context"
	"net/http"

	"github.com/companieshouse/chs.go/log"
	"github.com/companieshouse/sca.api.ch.gov.uk/config"
	"github.com/companieshouse/sca.api.ch.gov.uk/handlers"
	"github.com/gorilla/mux"
)

func main() {
	log.Namespace = "sca.api.ch.gov.uk"

	cfg, err := config.Get()
	if err != nil {
		log.Error(err)
		return
	}

	mainRouter := mux.NewRouter()
	sweeper := handlers.Register(mainRouter, *cfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go sweeper.Run(ctx)

	log.Info("Starting sca.api.ch.gov.uk service")
	err = http.ListenAndServe(cfg.BindAddr, mainRouter)

	if err != nil {
		log.Error(err)
	}
	log.Trace("Exiting sca.api.ch.gov.uk service")
}
