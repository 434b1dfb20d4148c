package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/telsin/filegrid/pkg/filegrid"
	dbinit "github.com/telsin/filegrid/pkg/filegrid/db/init"
	"github.com/telsin/filegrid/pkg/filegrid/log"
	"github.com/telsin/filegrid/pkg/filegrid/mail"
	sessioninit "github.com/telsin/filegrid/pkg/filegrid/session/init"
	"github.com/telsin/filegrid/pkg/tcache"
	"github.com/telsin/filegrid/routes"
	"github.com/telsin/filegrid/routes/controller"
	"github.com/telsin/filegrid/templates"
)

func printUsage() {
	fmt.Printf(`Usage: %s -config [config-path] [command]

Commands:

    (no command)    start the web server.
    install         set up database tables, session store & admin user.
    reset-admin     reset the password of the admin user.

`, os.Args[0])
}

func main() {
	configPath := flag.String("config", "./filegrid-config.json", "Path of the config file.")
	flag.Parse()

	cfg, err := filegrid.LoadConfigFile(*configPath)
	if err != nil {
		log.ERR("Failed to load config:", err.Error())
		os.Exit(1)
	}

	dbif, err := dbinit.InitializeDatabase(cfg)
	if err != nil {
		log.ERR("Failed to initialize database:", err.Error())
		os.Exit(1)
	}
	ssif, err := sessioninit.InitializeSessionStore(cfg)
	if err != nil {
		log.ERR("Failed to initialize session store:", err.Error())
		os.Exit(1)
	}
	var mailer mail.FilegridMailerInterface = nil
	if len(cfg.Mailer.Type) > 0 {
		mailer, err = mail.InitializeMailer(cfg)
		if err != nil {
			log.WARN("Failed to initialize mailer:", err.Error())
			log.WARN("Mail notification will not work until this is resolved.")
			mailer = nil
		}
	}

	ctx := &routes.RouterContext{
		Config: cfg,
		MasterTemplate: templates.LoadTemplate(),
		DatabaseInterface: dbif,
		SessionInterface: ssif,
		Mailer: mailer,
		RateLimiter: routes.NewRateLimiter(cfg.MaxRequestInSecond),
		GridCache: tcache.NewTCache(2*time.Minute),
	}

	switch flag.Arg(0) {
	case "":
		// fallthrough to serving below.
	case "install":
		InstallFilegrid(ctx)
		return
	case "reset-admin":
		ResetAdmin(ctx)
		return
	default:
		printUsage()
		os.Exit(1)
	}

	ok, err := dbif.IsDatabaseUsable()
	if err != nil {
		log.ERR("Failed to check database:", err.Error())
		os.Exit(1)
	}
	if !ok {
		log.ERR("Database not ready. Please run the install command first:")
		log.ERR(fmt.Sprintf("    %s -config %s install", os.Args[0], *configPath))
		os.Exit(1)
	}
	ok, err = ssif.IsSessionStoreUsable()
	if err != nil {
		log.ERR("Failed to check session store:", err.Error())
		os.Exit(1)
	}
	if !ok {
		log.ERR("Session store not ready. Please run the install command first:")
		log.ERR(fmt.Sprintf("    %s -config %s install", os.Args[0], *configPath))
		os.Exit(1)
	}

	controller.InitializeRoute(ctx)

	log.INFO("Serving at", cfg.ProperBindAddress())
	err = http.ListenAndServe(cfg.ProperBindAddress(), nil)
	if err != nil {
		log.ERR("Server stopped:", err.Error())
		os.Exit(1)
	}
}
