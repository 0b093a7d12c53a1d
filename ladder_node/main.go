package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gorilla/mux"
	"github.com/kelseyhightower/envconfig"

	"github.com/GDVFox/ladderlogic/ladder_node/api/rules"
	"github.com/GDVFox/ladderlogic/ladder_node/config"
	"github.com/GDVFox/ladderlogic/util"
	"github.com/GDVFox/ladderlogic/util/httplib"
)

var configFile string

func init() {
	flag.StringVar(&configFile, "config", "", "Name of config file")
}

func main() {
	flag.Parse()
	if configFile != "" {
		if err := util.LoadConfig(configFile, config.Conf); err != nil {
			fmt.Printf("can not read config file: %v", err)
			return
		}
	}
	if err := envconfig.Process("ladder_node", config.Conf); err != nil {
		fmt.Printf("can not process environment overrides: %v", err)
		return
	}

	logger, err := util.NewLogger(config.Conf.Logging)
	if err != nil {
		fmt.Printf("can not init logger: %v", err)
		return
	}

	r := mux.NewRouter().PathPrefix("/v1").Subrouter()

	r.HandleFunc("/dialects", httplib.CreateHandler(rules.ListDialects, logger)).Methods(http.MethodGet)
	r.HandleFunc("/convert", httplib.CreateHandler(rules.Convert, logger)).Methods(http.MethodPost)
	r.HandleFunc("/rungs", httplib.CreateHandler(rules.BuildRung, logger)).Methods(http.MethodPost)
	r.HandleFunc("/diagram", httplib.CreateHandler(rules.Diagram, logger)).Methods(http.MethodPost)
	r.HandleFunc("/live", httplib.CreateWSHandler(rules.Live, logger)).Methods(http.MethodGet)

	signalChannel := make(chan os.Signal, 1)
	signal.Notify(signalChannel, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(signalChannel)
	stopChannel := make(chan struct{})
	go func() {
		defer close(stopChannel)
		sig := <-signalChannel
		logger.Info("got signal: ", sig)
	}()

	httplib.StartServer(r, config.Conf.HTTP, logger, stopChannel)
}
