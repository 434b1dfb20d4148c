package main

import (
	"fmt"
	"os"

	"github.com/telsin/filegrid/routes"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/term"
)

func ResetAdmin(ctx *routes.RouterContext) {
	fmt.Printf("This utility is here for changing the password of the admin user.\n")
	fmt.Printf("Please enter a new password: ")
	s, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		fmt.Printf("Failed to read password while resetting admin: %s\n", err.Error())
		return
	}
	fmt.Printf("\n")
	hashedS, err := bcrypt.GenerateFromPassword(s, bcrypt.DefaultCost)
	if err != nil {
		fmt.Printf("Failed to hash password with bcrypt while resetting admin: %s\n", err.Error())
		return
	}
	err = ctx.DatabaseInterface.UpdateUserPassword("admin", string(hashedS))
	if err != nil {
		fmt.Printf("Failed to update password while resetting admin: %s\n", err.Error())
		return
	}
	fmt.Printf("Done.\n")
}
