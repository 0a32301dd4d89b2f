package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/jukebox-go/jukebox/internal/buildinfo"
)

const usage = `Usage: jukebox [flags] <commande> [args]

Commandes:
  health | version
  list [-q texte] [-sort] [-page n] [-size n]
  add <nom> <url>
  play <index>
  delete <index> [-yes]
  clear [-yes]
  export [-format json|txt] [-o fichier]
  theme [light|dark|toggle]`

func main() {
	baseURL := flag.String("server", envOr("JUKEBOX_SERVER_URL", "http://127.0.0.1:8080"), "URL du serveur (ex: http://127.0.0.1:8080)")
	timeout := flag.Duration("timeout", 10*time.Second, "Timeout HTTP")
	showVersion := flag.Bool("v", false, "Affiche la version du client")
	flag.Usage = func() { fmt.Fprintln(os.Stderr, usage) }
	flag.Parse()

	if *showVersion {
		fmt.Println(buildinfo.Current())
		return
	}

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	c := &client{
		http:    &http.Client{Timeout: *timeout},
		baseURL: strings.TrimRight(*baseURL, "/") + "/api/v1",
		out:     os.Stdout,
	}

	cmd, rest := args[0], args[1:]
	var err error
	switch cmd {
	case "health":
		err = c.get("/health")
	case "version":
		err = c.get("/version")
	case "list":
		err = runList(c, rest)
	case "add":
		if len(rest) != 2 {
			exitUsage("add <nom> <url>")
		}
		err = c.postJSON("/songs", map[string]string{"name": rest[0], "url": rest[1]})
	case "play":
		index := parseIndex(rest)
		err = c.post("/songs/" + strconv.Itoa(index) + "/play")
	case "delete":
		err = runDelete(c, rest)
	case "clear":
		err = runClear(c, rest)
	case "export":
		err = runExport(c, rest)
	case "theme":
		err = runTheme(c, rest)
	default:
		fmt.Fprintln(os.Stderr, "Commande inconnue:", cmd)
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Erreur:", err)
		os.Exit(1)
	}
}

func runList(c *client, args []string) error {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	search := fs.String("q", "", "Filtre sur le nom")
	sortPlays := fs.Bool("sort", false, "Trie par nombre de lectures")
	page := fs.Int("page", 1, "Page (à partir de 1)")
	size := fs.Int("size", 0, "Taille de page (5 par défaut)")
	_ = fs.Parse(args)

	q := url.Values{}
	q.Set("page", strconv.Itoa(*page))
	if *search != "" {
		q.Set("q", *search)
	}
	if *sortPlays {
		q.Set("sort", "plays")
	}
	if *size > 0 {
		q.Set("pageSize", strconv.Itoa(*size))
	}
	return c.get("/songs?" + q.Encode())
}

func runDelete(c *client, args []string) error {
	fs := flag.NewFlagSet("delete", flag.ExitOnError)
	yes := fs.Bool("yes", false, "Ne pas demander de confirmation")
	_ = fs.Parse(args)

	index := parseIndex(fs.Args())
	if !*yes && !confirm(os.Stdin, os.Stderr, fmt.Sprintf("Supprimer la chanson #%d ?", index)) {
		return nil
	}
	return c.delete("/songs/" + strconv.Itoa(index) + "?confirm=true")
}

func runClear(c *client, args []string) error {
	fs := flag.NewFlagSet("clear", flag.ExitOnError)
	yes := fs.Bool("yes", false, "Ne pas demander de confirmation")
	_ = fs.Parse(args)

	if !*yes && !confirm(os.Stdin, os.Stderr, "Supprimer toute la liste ?") {
		return nil
	}
	return c.delete("/songs?confirm=true")
}

func runExport(c *client, args []string) error {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	format := fs.String("format", "json", "json ou txt")
	out := fs.String("o", "", "Fichier de sortie (défaut: nom proposé par le serveur)")
	_ = fs.Parse(args)

	return c.download("/export?format="+url.QueryEscape(*format), *out)
}

func runTheme(c *client, args []string) error {
	if len(args) == 0 {
		return c.get("/theme")
	}
	switch args[0] {
	case "toggle":
		return c.post("/theme/toggle")
	case "light", "dark":
		return c.putJSON("/theme", map[string]string{"theme": args[0]})
	default:
		exitUsage("theme [light|dark|toggle]")
		return nil
	}
}

// confirm pose une question oui/non sur in ; tout sauf o/oui/y/yes = non.
func confirm(in io.Reader, out io.Writer, prompt string) bool {
	fmt.Fprintf(out, "%s [o/N] ", prompt)
	line, _ := bufio.NewReader(in).ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "o", "oui", "y", "yes":
		return true
	default:
		return false
	}
}

func parseIndex(args []string) int {
	if len(args) != 1 {
		exitUsage("<index>")
	}
	index, err := strconv.Atoi(args[0])
	if err != nil {
		exitUsage("<index> doit être un entier")
	}
	return index
}

func exitUsage(msg string) {
	fmt.Fprintln(os.Stderr, "Usage:", msg)
	os.Exit(2)
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
