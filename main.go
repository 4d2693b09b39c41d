package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"talentscout/app/client/nominatim"
	"talentscout/app/client/openrouter"
	"talentscout/app/config"
	"talentscout/app/server"
	"talentscout/app/service/dialogue"
	"talentscout/app/service/store"
	"talentscout/app/service/validate"
	"talentscout/app/util/mylog"

	"github.com/gofiber/fiber/v2/log"
	"github.com/samber/do"
)

func main() {
	genKey := flag.Bool("genkey", false, "generate a fresh encryption key and exit")
	flag.Parse()

	if *genKey {
		key, err := store.GenerateKey()
		if err != nil {
			log.Fatalf("key generation failed: %v", err)
		}
		fmt.Println(key)
		return
	}

	di := do.New()
	defer di.Shutdown()
	defer log.Info("Waiting for services to finish...")

	mylog.Preinit()

	appCtx, cancel := context.WithCancel(context.Background())
	defer cancel()
	do.ProvideValue(di, appCtx)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}
	do.ProvideValue(di, cfg)

	if err = mylog.Init(cfg.Log); err != nil {
		log.Fatalf("logging init failed: %v", err)
	}

	do.Provide(di, nominatim.NewClient)
	do.Provide(di, openrouter.NewClient)
	do.Provide(di, validate.New)
	do.Provide(di, store.New)
	do.Provide(di, dialogue.New)
	do.Provide(di, server.New)

	slog.Info("Service started")

	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt)
		<-sigint

		log.Info("Shutting down...")

		cancel()
	}()

	if err = do.MustInvoke[*server.Service](di).Run(appCtx); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
