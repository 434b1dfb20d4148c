package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"

	"github.com/telsin/filegrid/pkg/filegrid/db"
	"github.com/telsin/filegrid/pkg/filegrid/model"
	"github.com/telsin/filegrid/routes"
	"golang.org/x/crypto/bcrypt"
)

const passchdict = "abcdefghijklmnopqrstuvwxyz0123456789!@#$%_-"
func mkpass() string {
	res := make([]byte, 0)
	for range 16 {
		res = append(res, passchdict[rand.Intn(len(passchdict))])
	}
	return string(res)
}

func askYesNo(prompt string) bool {
	fmt.Printf("%s [y/n] ", prompt)
	for {
		var answer string
		_, err := fmt.Scan(&answer)
		if err != nil { log.Panic(err) }
		if answer == "y" || answer == "Y" { return true }
		if answer == "n" || answer == "N" { return false }
		fmt.Print("Please enter y or n... [y/n] ")
	}
}

// InstallFilegrid sets up everything a fresh config file points at:
// database tables, session store & the initial admin user. safe to
// run again on an existing setup; it only fills in what's missing.
func InstallFilegrid(ctx *routes.RouterContext) {
	dbif := ctx.DatabaseInterface
	ssif := ctx.SessionInterface
	cfg := ctx.Config

	fmt.Println("Setting up database...")
	if len(cfg.Database.Type) <= 0 {
		fmt.Print("Cannot infer database interface since database type empty in config. Please fix it and try again.")
		os.Exit(1)
	}
	s, err := dbif.IsDatabaseUsable()
	if err != nil { log.Panic(err) }
	if !s {
		fmt.Println("Setting up tables...")
		err = dbif.InstallTables()
		if err != nil { log.Panic(err) }
	}

	fmt.Println("Setting up session store...")
	if len(cfg.Session.Type) <= 0 {
		fmt.Print("Cannot infer session interface since session type empty in config. Please fix it and try again.")
		os.Exit(1)
	}
	s, err = ssif.IsSessionStoreUsable()
	if err != nil { log.Panic(err) }
	if !s {
		err = ssif.Install()
		if err != nil { log.Panic(err) }
	}

	fmt.Println("Setting up admin user...")
	adminExists := false
	_, err = dbif.GetUserByName("admin")
	if err == nil {
		adminExists = true
	} else if !db.IsEntityNotFound(err) {
		log.Panic(err)
	}
	reinstallAdmin := true
	if adminExists {
		reinstallAdmin = askYesNo("Admin user already exist; reinitialize?")
	}
	if reinstallAdmin {
		if adminExists {
			err = dbif.HardDeleteUserByName("admin")
			if err != nil { log.Panic(err) }
		}
		userPassword := mkpass()
		r, err := bcrypt.GenerateFromPassword([]byte(userPassword), bcrypt.DefaultCost)
		if err != nil {
			log.Panicf("Failed to generate password: %s\n", err.Error())
		}
		_, err = dbif.RegisterUser("admin", "Administrator", "", string(r), model.ADMIN)
		if err != nil {
			log.Panicf("Failed to register user: %s\n", err.Error())
		}
		fmt.Print(`Admin user setup complete. Please use the reset-admin command to change the password:

    filegrid -config [config-path] reset-admin

`)
	}

	if len(cfg.DownloadTokenSecret) <= 0 {
		fmt.Println("No download token secret configured; generating one.")
		cfg.DownloadTokenSecret = mkpass() + mkpass()
		err = cfg.Sync()
		if err != nil {
			fmt.Printf("Failed to sync config: %s\n", err.Error())
		}
	}

	fmt.Println("Done. Please restart the program to start the server.")
}
