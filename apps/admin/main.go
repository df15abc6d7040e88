package main

import (
	"log"
	"os"

	"github.com/kanisa-app/kanisa/core"
	"github.com/kanisa-app/kanisa/core/user"
	logsvc "github.com/kanisa-app/kanisa/services/logger"
	"github.com/kanisa-app/kanisa/storage/database"
	"github.com/kanisa-app/kanisa/storage/database/inmem"
	sqlxrepos "github.com/kanisa-app/kanisa/storage/database/sqlx"
)

var logger *log.Logger

func main() {
	defer os.Exit(0)

	logger = log.New(os.Stdout, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)
	conf := core.NewConfig()

	cli := commandLine{conf: conf}

	if conf.Database.Enabled {
		db, err := database.Open(conf)
		errAndDie(err)
		defer db.Close()
		errAndDie(db.Ping())

		cli.db = db
		cli.usrSvc = user.NewService(sqlxrepos.NewUserRepository(db), nil, conf)
	} else {
		memDB, err := inmemdb.Open()
		errAndDie(err)
		cli.usrSvc = user.NewService(inmemdb.NewUserRepository(memDB), nil, conf)
	}

	cli.logger = logsvc.NewStdLogger(logger)

	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Printf("\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}

func errAndDie(err error) {
	if err != nil {
		logger.Fatal(err)
	}
}
