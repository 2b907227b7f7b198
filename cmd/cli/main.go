// Command cli is a terminal front-end for the onboarding API, driving
// the client SDK: account registration, both login paths, the session
// probe and the investor-profile form.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"finvest_backend/internal/client"
)

func main() {
	server := flag.String("server", "http://localhost:10000", "API base URL")
	credsPath := flag.String("creds", defaultCredsPath(), "credentials file")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	api := client.NewAPIClient(*server)
	store := client.NewFileCredentialStore(*credsPath)
	session := client.NewSession(api, store)

	if err := session.Open(ctx); err != nil {
		fatal("open session: %v", err)
	}

	cmd, cmdArgs := args[0], args[1:]
	var err error
	switch cmd {
	case "register":
		err = runRegister(ctx, session, cmdArgs)
	case "login":
		err = runLogin(ctx, session, cmdArgs)
	case "google-login":
		err = runGoogleLogin(ctx, session, cmdArgs)
	case "logout":
		err = session.Logout()
		if err == nil {
			fmt.Println("logged out")
		}
	case "status":
		runStatus(session)
	case "show":
		err = runShow(ctx, api, session)
	case "submit":
		err = runSubmit(ctx, api, session, cmdArgs)
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		fatal("%s: %v", cmd, err)
	}
}

func runRegister(ctx context.Context, session *client.Session, args []string) error {
	fs := flag.NewFlagSet("register", flag.ExitOnError)
	name := fs.String("name", "", "display name")
	email := fs.String("email", "", "email address")
	password := fs.String("password", "", "password (min 6 characters)")
	fs.Parse(args)

	if err := session.Register(ctx, *name, *email, *password); err != nil {
		return err
	}
	fmt.Printf("registered as %s\n", session.User().Email)
	return nil
}

func runLogin(ctx context.Context, session *client.Session, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "email address")
	password := fs.String("password", "", "password")
	fs.Parse(args)

	if err := session.Login(ctx, *email, *password); err != nil {
		return err
	}
	fmt.Printf("logged in as %s\n", session.User().Email)
	return nil
}

func runGoogleLogin(ctx context.Context, session *client.Session, args []string) error {
	fs := flag.NewFlagSet("google-login", flag.ExitOnError)
	credential := fs.String("credential", "", "Google-issued ID token")
	fs.Parse(args)

	if err := session.GoogleLogin(ctx, *credential); err != nil {
		return err
	}
	fmt.Printf("logged in as %s\n", session.User().Email)
	return nil
}

func runStatus(session *client.Session) {
	fmt.Printf("session: %s\n", session.State())
	if session.State() == client.StateAuthenticated {
		user := session.User()
		fmt.Printf("user: %s <%s>\n", user.Name, user.Email)
	}
}

func runShow(ctx context.Context, api *client.APIClient, session *client.Session) error {
	if err := session.RequireAuthenticated(); err != nil {
		return err
	}

	envelope, err := api.GetDetails(ctx)
	if err != nil {
		return err
	}
	if !envelope.Exists {
		fmt.Println("no investor profile yet; run 'submit'")
		return nil
	}

	out, err := json.MarshalIndent(envelope.Details, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func runSubmit(ctx context.Context, api *client.APIClient, session *client.Session, args []string) error {
	fs := flag.NewFlagSet("submit", flag.ExitOnError)
	path := fs.String("file", "", "JSON file with the profile fields")
	fs.Parse(args)

	form := client.NewForm(api, session)
	if err := form.Load(ctx); err != nil {
		return err
	}

	if *path != "" {
		raw, err := os.ReadFile(*path)
		if err != nil {
			return err
		}
		if err := json.Unmarshal(raw, &form.Fields); err != nil {
			return fmt.Errorf("parse %s: %w", *path, err)
		}
	}

	if problems := form.Validate(); len(problems) > 0 {
		var lines []string
		for field, msg := range problems {
			lines = append(lines, fmt.Sprintf("  %s: %s", field, msg))
		}
		return fmt.Errorf("invalid profile:\n%s", strings.Join(lines, "\n"))
	}

	resp, err := form.Submit(ctx)
	if err != nil {
		return err
	}
	fmt.Println(resp.Message)
	return nil
}

func defaultCredsPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".finvest-credentials.json"
	}
	return filepath.Join(home, ".finvest", "credentials.json")
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: cli [flags] <command> [command flags]

commands:
  register      create an account (-name, -email, -password)
  login         sign in with email and password (-email, -password)
  google-login  sign in with a Google ID token (-credential)
  logout        discard the stored session
  status        print the session state
  show          print the stored investor profile
  submit        create or update the investor profile (-file profile.json)`)
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
