package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hoaibao3112/Golang-webDienThoai/internal/api"
	"github.com/hoaibao3112/Golang-webDienThoai/internal/config"
)

func main() {
	loginCmd := flag.NewFlagSet("login", flag.ExitOnError)
	email := loginCmd.String("email", "", "Account email")
	password := loginCmd.String("password", "", "Account password")

	if len(os.Args) < 2 {
		fmt.Println("expected 'login' or 'health' subcommand")
		os.Exit(1)
	}

	switch os.Args[1] {
	case "login":
		loginCmd.Parse(os.Args[2:])
		if *email == "" || *password == "" {
			fmt.Println("email and password are required")
			loginCmd.PrintDefaults()
			os.Exit(1)
		}
		login(*email, *password)
	case "health":
		health()
	default:
		fmt.Println("expected 'login' or 'health' subcommand")
		os.Exit(1)
	}
}

func newClient() *api.Client {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	return api.NewClient(cfg.APIBaseURL)
}

// login exchanges credentials for a bearer token and prints it, handy for
// poking the API with curl.
func login(email, password string) {
	client := newClient()
	resp, err := client.Login(context.Background(), api.LoginRequest{Email: email, Password: password})
	if err != nil {
		log.Fatalf("Login failed: %v", err)
	}
	fmt.Printf("Logged in as %s (%s)\n", resp.User.FullName, resp.User.Email)
	fmt.Println(resp.Token)
}

// health checks that the store API answers by listing brands.
func health() {
	client := newClient()
	brands, err := client.Brands(context.Background())
	if err != nil {
		log.Fatalf("API unreachable: %v", err)
	}
	fmt.Printf("API ok, %d brands\n", len(brands))
}
