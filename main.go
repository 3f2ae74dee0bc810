package main

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jackc/cardform/backend"
	"github.com/jackc/cardform/cardform"
	"github.com/urfave/cli"
	"github.com/vaughan0/go-ini"
	log "gopkg.in/inconshreveable/log15.v2"
)

const version = "0.1.0"

func main() {
	app := cli.NewApp()
	app.Name = "cardform"
	app.Usage = "Credit card entry form"
	app.Version = version

	configFlag := cli.StringFlag{Name: "config, c", Value: "cardform.conf", Usage: "path to config file"}

	app.Commands = []cli.Command{
		{
			Name:        "server",
			Aliases:     []string{"s"},
			Usage:       "run the server",
			ArgsUsage:   " ",
			Description: "serve the card entry form over HTTP",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "address, a", Value: "127.0.0.1", Usage: "address to listen on"},
				cli.StringFlag{Name: "port, p", Value: "8080", Usage: "port to listen on"},
				configFlag,
			},
			Action: Serve,
		},
		{
			Name:        "check",
			Usage:       "type card details into the form and submit it",
			ArgsUsage:   " ",
			Description: "replay the given values through the form one keystroke at a time and print the submit result",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "card-number", Usage: "card number as four blocks, e.g. \"1234 5678 9012 3456\""},
				cli.StringFlag{Name: "expiration", Usage: "expiration date as MM/YY"},
				cli.StringFlag{Name: "owner-name", Usage: "name on the card (optional)"},
				cli.StringFlag{Name: "security-code", Usage: "CVC/CVV"},
				cli.StringFlag{Name: "password", Usage: "first two digits of the card PIN"},
				configFlag,
			},
			Action: Check,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig reads the ini file at path. A missing file is only an error when
// required is true.
func loadConfig(path string, required bool) (ini.File, error) {
	path, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("Invalid config path: %v", err)
	}

	file, err := ini.LoadFile(path)
	if err != nil {
		if !required && errors.Is(err, os.ErrNotExist) {
			return ini.File{}, nil
		}
		return nil, fmt.Errorf("Failed to load config file: %v", err)
	}

	return file, nil
}

func newLogger(conf ini.File) (log.Logger, error) {
	level, _ := conf.Get("log", "level")
	if level == "" {
		level = "warn"
	}

	logger := log.New()
	if err := setFilterHandler(level, logger, log.StdoutHandler); err != nil {
		return nil, err
	}

	return logger, nil
}

func setFilterHandler(level string, logger log.Logger, handler log.Handler) error {
	if level == "none" {
		logger.SetHandler(log.DiscardHandler())
		return nil
	}

	lvl, err := log.LvlFromString(level)
	if err != nil {
		return fmt.Errorf("Bad log level: %v", err)
	}
	logger.SetHandler(log.LvlFilterHandler(lvl, handler))

	return nil
}

func loadHTTPConfig(c *cli.Context, conf ini.File) (backend.HTTPConfig, error) {
	config := backend.HTTPConfig{}
	config.ListenAddress = c.String("address")
	config.ListenPort = c.String("port")

	if !c.IsSet("address") {
		if address, ok := conf.Get("server", "address"); ok {
			config.ListenAddress = address
		}
	}

	if !c.IsSet("port") {
		if port, ok := conf.Get("server", "port"); ok {
			config.ListenPort = port
		}
	}

	if s, ok := conf.Get("forms", "max_sessions"); ok {
		n, err := strconv.Atoi(s)
		if err != nil {
			return config, fmt.Errorf("Bad forms max_sessions: %v", err)
		}
		config.MaxSessions = n
	}

	return config, config.Validate()
}

func Serve(c *cli.Context) error {
	conf, err := loadConfig(c.String("config"), c.IsSet("config"))
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	httpConfig, err := loadHTTPConfig(c, conf)
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	logger, err := newLogger(conf)
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	handler, err := backend.NewAppServer(httpConfig, logger.New("module", "http"))
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	listenAt := fmt.Sprintf("%s:%s", httpConfig.ListenAddress, httpConfig.ListenPort)
	fmt.Printf("Starting to listen on: %s\n", listenAt)

	if err := http.ListenAndServe(listenAt, handler); err != nil {
		logger.Crit("Could not start web server", "error", err)
		return cli.NewExitError("Could not start web server!", 1)
	}

	return nil
}

// stdoutAlerter prints alerts the way a browser dialog would show them.
type stdoutAlerter struct{}

func (stdoutAlerter) Alert(message string) {
	fmt.Println(message)
}

// focusLogger records focus moves at debug level.
type focusLogger struct {
	logger log.Logger
}

func (f focusLogger) Focus(id cardform.FieldID) {
	f.logger.Debug("focus", "field", id)
}

type checkInput struct {
	field cardform.FieldID
	value string
}

// splitCheckInputs maps the check command's flags onto form cells.
func splitCheckInputs(c *cli.Context) []checkInput {
	var inputs []checkInput
	add := func(fields []cardform.FieldID, values []string) {
		for i, id := range fields {
			if i < len(values) {
				inputs = append(inputs, checkInput{field: id, value: values[i]})
			}
		}
	}

	add(cardform.GroupFields(cardform.CardNumberGroup), strings.Fields(c.String("card-number")))
	add(cardform.GroupFields(cardform.ExpirationDateGroup), strings.SplitN(c.String("expiration"), "/", 2))
	add(cardform.GroupFields(cardform.OwnerNameGroup), []string{c.String("owner-name")})
	add(cardform.GroupFields(cardform.SecurityCodeGroup), []string{c.String("security-code")})

	var pin []string
	for _, r := range c.String("password") {
		pin = append(pin, string(r))
	}
	add(cardform.GroupFields(cardform.PasswordGroup), pin)

	return inputs
}

func Check(c *cli.Context) error {
	conf, err := loadConfig(c.String("config"), c.IsSet("config"))
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	logger, err := newLogger(conf)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	logger = logger.New("module", "check")

	controller := cardform.NewController(focusLogger{logger: logger}, stdoutAlerter{})

	for _, input := range splitCheckInputs(c) {
		runes := []rune(input.value)
		for i := range runes {
			change := controller.Change(input.field, string(runes[:i+1]))
			if !change.Accepted {
				logger.Warn("keystroke rejected", "field", input.field, "position", i+1)
				break
			}
		}
	}

	if _, err := controller.Submit(); err != nil {
		return cli.NewExitError("", 1)
	}

	return nil
}
