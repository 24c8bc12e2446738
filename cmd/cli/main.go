// Command gv is a CLI client for the gamevault service.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/avolchek/gamevault/internal/client"
	"github.com/avolchek/gamevault/internal/errs"
	"github.com/avolchek/gamevault/internal/session"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

func usage() {
	fmt.Fprintf(os.Stderr, `gv CLI
Usage:
  gv -addr URL [-cacert file | -insecure] <cmd> [args]

Commands:
  version
  signup     -u <email> -p <password>              (saves session)
  login      -u <email> -p <password>              (saves session)
  logout                                           (clears session)
  whoami
  games
  add-game   -title <title>
  rm-game    -id <n>
  review     -game <n> -text <content>
  rm-review  -id <n>
`)
	os.Exit(2)
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

func fail(err error) {
	switch {
	case errors.Is(err, errs.ErrUnauthenticated):
		fmt.Fprintln(os.Stderr, "not logged in (run: gv login)")
	case errors.Is(err, errs.ErrInvalidCredentials):
		fmt.Fprintln(os.Stderr, "invalid credentials")
	default:
		fmt.Fprintln(os.Stderr, err)
	}
	os.Exit(1)
}

func parseCreds(args []string) (email, password string) {
	fs := flag.NewFlagSet("creds", flag.ExitOnError)
	u := fs.String("u", "", "email")
	p := fs.String("p", "", "password")
	_ = fs.Parse(args)
	if *u == "" || *p == "" {
		fmt.Fprintln(os.Stderr, "need -u and -p")
		os.Exit(1)
	}
	return *u, *p
}

func parseID(args []string) int64 {
	fs := flag.NewFlagSet("id", flag.ExitOnError)
	id := fs.Int64("id", 0, "numeric id")
	_ = fs.Parse(args)
	if *id <= 0 {
		fmt.Fprintln(os.Stderr, "need -id")
		os.Exit(1)
	}
	return *id
}

// main dispatches subcommands against the configured server.
func main() {
	// global flags
	addr := flag.String("addr", "http://localhost:8443", "server base URL")
	caPath := flag.String("cacert", "", "CA cert (PEM)")
	insecure := flag.Bool("insecure", false, "skip cert verify (dev)")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() < 1 {
		usage()
	}
	cmd := flag.Arg(0)
	rest := flag.Args()[1:]

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	store, err := session.Open(session.DefaultDir())
	if err != nil {
		fail(err)
	}
	api := client.New(*addr, store, client.WithTLS(*caPath, *insecure))

	switch cmd {

	case "version":
		fmt.Printf("gv %s (%s)\n", version, buildDate)

	case "signup":
		email, password := parseCreds(rest)
		sess, err := api.Signup(ctx, email, password)
		if err != nil {
			fail(err)
		}
		if err := store.Set(*sess); err != nil {
			fail(err)
		}
		fmt.Println(sess.Identity.ID)

	case "login":
		email, password := parseCreds(rest)
		sess, err := api.Login(ctx, email, password)
		if err != nil {
			fail(err)
		}
		if err := store.Set(*sess); err != nil {
			fail(err)
		}
		fmt.Println("ok")

	case "logout":
		if err := store.Clear(); err != nil {
			fail(err)
		}
		fmt.Println("ok")

	case "whoami":
		id, err := api.Me(ctx)
		if err != nil {
			fail(err)
		}
		printJSON(id)

	case "games":
		games, err := api.ListGames(ctx)
		if err != nil {
			fail(err)
		}
		// короткая сводка вместо полного дерева
		type row struct {
			ID      string `json:"id"`
			Title   string `json:"title"`
			Reviews int    `json:"reviews"`
		}
		rows := []row{}
		for _, g := range games {
			rows = append(rows, row{
				ID:      strconv.FormatInt(g.ID, 10),
				Title:   g.Title,
				Reviews: len(g.Reviews),
			})
		}
		printJSON(rows)

	case "add-game":
		fs := flag.NewFlagSet("add-game", flag.ExitOnError)
		title := fs.String("title", "", "game title")
		_ = fs.Parse(rest)
		if *title == "" {
			fmt.Fprintln(os.Stderr, "need -title")
			os.Exit(1)
		}
		g, err := api.CreateGame(ctx, *title)
		if err != nil {
			fail(err)
		}
		printJSON(g)

	case "rm-game":
		if err := api.DeleteGame(ctx, parseID(rest)); err != nil {
			fail(err)
		}
		fmt.Println("ok")

	case "review":
		fs := flag.NewFlagSet("review", flag.ExitOnError)
		gameID := fs.Int64("game", 0, "game id")
		text := fs.String("text", "", "review content")
		_ = fs.Parse(rest)
		if *gameID <= 0 || *text == "" {
			fmt.Fprintln(os.Stderr, "need -game and -text")
			os.Exit(1)
		}
		rv, err := api.CreateReview(ctx, *gameID, *text)
		if err != nil {
			fail(err)
		}
		printJSON(rv)

	case "rm-review":
		if err := api.DeleteReview(ctx, parseID(rest)); err != nil {
			fail(err)
		}
		fmt.Println("ok")

	default:
		usage()
	}
}
