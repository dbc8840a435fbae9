package main

import (
	"flag"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/masrafi-000/mytaskmanager/pkg/api"
	"github.com/masrafi-000/mytaskmanager/pkg/config"
	"github.com/masrafi-000/mytaskmanager/pkg/session"
)

func check(err error) {
	if err != nil {
		panic(err)
	}
}

var (
	serverURL   = flag.String("server", "", "Backend URL (overrides the config file)")
	sessionPath = flag.String("session", "", "Path to the session file")
)

func main() {
	flag.Parse()

	cfg, err := config.Load()
	check(err)
	if *serverURL != "" {
		cfg.ServerURL = *serverURL
	}

	path := *sessionPath
	if path == "" {
		path, err = session.DefaultPath()
		check(err)
	}
	sessions := session.NewFileStore(path)
	sess, err := sessions.Load()
	check(err)

	client := api.New(cfg.ServerURL)
	if sess.Valid() {
		client.SetToken(sess.Token)
	}

	a := newApp(client, sessions, sess)
	p := tea.NewProgram(a)

	p.EnterAltScreen()
	defer p.ExitAltScreen()
	p.EnableMouseAllMotion()
	defer p.DisableMouseAllMotion()

	check(p.Start())
}
