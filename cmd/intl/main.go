// intl is a command-line front end for the gettext binding, in the
// spirit of gettext(1) and ngettext(1): it resolves message ids
// against the native catalogs, which makes it handy for shell scripts
// and for inspecting what a given domain/locale combination actually
// returns.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/briandowns/spinner"
	"github.com/urfave/cli/v2"
	"golang.org/x/term"

	"github.com/redhatinsights/gettext"
	"github.com/redhatinsights/gettext/internal/conf"
	"github.com/redhatinsights/gettext/internal/l10n"
)

func main() {
	app := &cli.App{
		Name:    "intl",
		Version: "0.1.0",
		Usage:   l10n.T("resolve message ids against the native gettext catalogs"),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "domain",
				Usage: l10n.T("message domain to query"),
			},
			&cli.StringFlag{
				Name:  "dir",
				Usage: l10n.T("directory containing the domain's MO catalogs"),
			},
			&cli.StringFlag{
				Name:  "locale",
				Usage: l10n.T("locale to translate into (empty: from environment)"),
			},
			&cli.StringFlag{
				Name:  "codeset",
				Usage: l10n.T("codeset to request for translated output"),
			},
		},
		Before: setup,
		Commands: []*cli.Command{
			{
				Name:      "get",
				Usage:     l10n.T("translate a message id"),
				ArgsUsage: "MSGID",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "context",
						Usage: l10n.T("disambiguating message context"),
					},
					&cli.StringFlag{
						Name:  "category",
						Usage: l10n.T("locale category to query, e.g. LC_MESSAGES"),
					},
				},
				Action: getAction,
			},
			{
				Name:      "nget",
				Usage:     l10n.T("translate a message id with plural forms"),
				ArgsUsage: "MSGID PLURAL COUNT",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "context",
						Usage: l10n.T("disambiguating message context"),
					},
				},
				Action: ngetAction,
			},
			{
				Name:   "status",
				Usage:  l10n.T("show the current domain, directory and codeset bindings"),
				Action: statusAction,
			},
			{
				Name:      "init",
				Usage:     l10n.T("discover a domain's catalogs in the system data paths"),
				ArgsUsage: "DOMAIN",
				Action:    initAction,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}

// setup applies the configuration file and global flags to the
// process-wide native state, before any command runs.
func setup(c *cli.Context) error {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: conf.Configuration.LogLevel,
	})))

	locale := c.String("locale")
	if locale == "" {
		locale = conf.Configuration.Locale
	}
	// An empty locale means "from the environment" to the native
	// library, which is the behaviour gettext(1) users expect.
	got, ok := gettext.SetLocale(gettext.LcAll, locale)
	if !ok {
		return cli.Exit(l10n.T("locale %q is not available", locale), 1)
	}
	slog.Debug("locale set", "locale", got)

	domain := c.String("domain")
	if domain == "" {
		domain = conf.Configuration.Domain
	}
	if domain != "" {
		dir := c.String("dir")
		if dir == "" {
			dir = conf.Configuration.LocaleDir
		}
		if dir != "" {
			bound, err := gettext.BindTextdomain(domain, dir)
			if err != nil {
				return err
			}
			slog.Debug("domain directory bound", "domain", domain, "dir", bound)
		}
		if _, err := gettext.Textdomain(domain); err != nil {
			return err
		}
	}

	codeset := c.String("codeset")
	if codeset == "" {
		codeset = conf.Configuration.Codeset
	}
	if domain != "" && codeset != "" {
		if _, err := gettext.BindTextdomainCodeset(domain, codeset); err != nil {
			return err
		}
	}

	return nil
}

func getAction(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit(l10n.T("usage: intl get MSGID"), 2)
	}
	msgid := c.Args().Get(0)

	var out string
	switch {
	case c.String("context") != "":
		out = gettext.PGettext(c.String("context"), msgid)
	case c.String("category") != "":
		category, err := gettext.ParseLocaleCategory(c.String("category"))
		if err != nil {
			return cli.Exit(err.Error(), 2)
		}
		domain, err := gettext.CurrentTextdomain()
		if err != nil {
			return err
		}
		out = gettext.DCGettext(domain, msgid, category)
	default:
		out = gettext.Gettext(msgid)
	}

	fmt.Println(out)
	return nil
}

func ngetAction(c *cli.Context) error {
	if c.NArg() != 3 {
		return cli.Exit(l10n.T("usage: intl nget MSGID PLURAL COUNT"), 2)
	}
	msgid := c.Args().Get(0)
	plural := c.Args().Get(1)
	n, err := strconv.ParseUint(c.Args().Get(2), 10, 32)
	if err != nil {
		return cli.Exit(l10n.T("COUNT must be a non-negative number: %v", err), 2)
	}

	var out string
	if ctx := c.String("context"); ctx != "" {
		out = gettext.NPGettext(ctx, msgid, plural, uint32(n))
	} else {
		out = gettext.NGettext(msgid, plural, uint32(n))
	}

	fmt.Println(out)
	return nil
}

func statusAction(c *cli.Context) error {
	domain, err := gettext.CurrentTextdomain()
	if err != nil {
		return err
	}
	dir, err := gettext.DomainDirectory(domain)
	if err != nil {
		return err
	}
	codeset, err := gettext.TextdomainCodeset(domain)
	if err != nil {
		return err
	}
	if codeset == "" {
		codeset = l10n.TC("codeset", "(not set)")
	}

	fmt.Printf("%s\t%s\n", l10n.T("domain"), domain)
	fmt.Printf("%s\t%s\n", l10n.T("directory"), dir)
	fmt.Printf("%s\t%s\n", l10n.T("codeset"), codeset)
	return nil
}

func initAction(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit(l10n.T("usage: intl init DOMAIN"), 2)
	}

	td := gettext.TextDomain{
		Name:    c.Args().Get(0),
		Locale:  c.String("locale"),
		Codeset: c.String("codeset"),
	}
	if dir := c.String("dir"); dir != "" {
		td.PrependPaths = []string{dir}
	}

	// The system data path scan can take a moment on cold caches;
	// show progress only when talking to a terminal.
	var spin *spinner.Spinner
	if term.IsTerminal(int(os.Stdout.Fd())) {
		spin = spinner.New(spinner.CharSets[9], 100*time.Millisecond)
		spin.Suffix = " " + l10n.T("searching for catalogs of %v", td.Name)
		spin.Start()
	}
	locale, err := td.Init()
	if spin != nil {
		spin.Stop()
	}
	if err != nil {
		return err
	}

	fmt.Println(l10n.T("domain %v initialized for locale %v", td.Name, locale))
	return nil
}
