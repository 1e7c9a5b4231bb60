// adbcpool-check opens a single connection through the pool manager and
// runs the validity probe against it. Useful for verifying driver options
// and reachability before wiring a pool into an application.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/apache/arrow-adbc/go/adbc"
	"github.com/apache/arrow-adbc/go/adbc/driver/flightsql"
	"github.com/apache/arrow-adbc/go/adbc/drivermgr"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/adbc-contrib/adbcpool"
)

var rootCmd = &cobra.Command{
	Use:   "adbcpool-check",
	Short: "Open and validate one ADBC connection",
	Long: `Open and validate one ADBC connection.

Loads either the pure-Go Flight SQL driver or any native ADBC driver
shared library, applies database and connection options in flag order,
opens a connection through the pool manager and probes its validity.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := run(cmd, args); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

const (
	driverFlag     = "driver"
	dbOptionFlag   = "db-option"
	connOptionFlag = "conn-option"
	timeoutFlag    = "timeout"
)

func init() {
	rootCmd.Flags().StringP(driverFlag, "d", "flightsql",
		"driver to load: 'flightsql' or a path to an ADBC driver shared library")
	rootCmd.Flags().StringArrayP(dbOptionFlag, "o", nil,
		"database option as key=value, repeatable (e.g. uri=grpc://localhost:32010)")
	rootCmd.Flags().StringArrayP(connOptionFlag, "c", nil,
		"connection option as key=value, repeatable, applied in flag order")
	rootCmd.Flags().Duration(timeoutFlag, 30*time.Second,
		"overall deadline for the check")
}

func run(cmd *cobra.Command, _ []string) error {
	logger, err := adbcpool.NewDefaultLogger()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	driverName, err := cmd.Flags().GetString(driverFlag)
	if err != nil {
		return err
	}

	rawDBOptions, err := cmd.Flags().GetStringArray(dbOptionFlag)
	if err != nil {
		return err
	}

	rawConnOptions, err := cmd.Flags().GetStringArray(connOptionFlag)
	if err != nil {
		return err
	}

	timeout, err := cmd.Flags().GetDuration(timeoutFlag)
	if err != nil {
		return err
	}

	dbOptions := make(map[string]string, len(rawDBOptions)+1)

	for _, raw := range rawDBOptions {
		key, value, err := splitOption(raw)
		if err != nil {
			return err
		}

		dbOptions[key] = value
	}

	var driver adbc.Driver

	if driverName == "flightsql" {
		driver = flightsql.NewDriver(memory.DefaultAllocator)
	} else {
		driver = &drivermgr.Driver{}
		dbOptions["driver"] = driverName
	}

	db, err := driver.NewDatabase(dbOptions)
	if err != nil {
		return fmt.Errorf("new database: %w", err)
	}

	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("close database", zap.Error(err))
		}
	}()

	manager := adbcpool.NewConnectionManager(adbcpool.WrapDatabase(db, logger))
	manager.SetLogger(logger)

	for _, raw := range rawConnOptions {
		key, value, err := splitOption(raw)
		if err != nil {
			return err
		}

		manager.AddOption(key, value)
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	started := time.Now()

	conn, err := manager.Connect(ctx)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}

	defer func() {
		if err := conn.Close(); err != nil {
			logger.Error("close connection", zap.Error(err))
		}
	}()

	logger.Info("connection established",
		zap.String("driver", driverName),
		zap.Int("connection_options", len(manager.Options())),
		zap.Duration("elapsed", time.Since(started)),
	)

	if err := manager.IsValid(conn); err != nil {
		return fmt.Errorf("validate: %w", err)
	}

	logger.Info("connection is valid")

	return nil
}

func splitOption(raw string) (string, string, error) {
	key, value, ok := strings.Cut(raw, "=")
	if !ok || key == "" {
		return "", "", fmt.Errorf("invalid option %q: want key=value", raw)
	}

	return key, value, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
