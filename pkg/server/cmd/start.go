/* Copyright 2025 AINotes Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package cmd

import (
	"fmt"
	"net/http"

	"github.com/ainotes/ainotes/pkg/server/app"
	"github.com/ainotes/ainotes/pkg/server/buildinfo"
	"github.com/ainotes/ainotes/pkg/server/config"
	"github.com/ainotes/ainotes/pkg/server/controllers"
	"github.com/ainotes/ainotes/pkg/server/log"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newStartCmd() *cobra.Command {
	var port string
	var databaseURL string
	var disableRegistration bool
	var logLevel string

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start the server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.New(config.Params{
				Port:                port,
				DatabaseURL:         databaseURL,
				DisableRegistration: disableRegistration,
				LogLevel:            logLevel,
			})
			if err != nil {
				return errors.Wrap(err, "loading configuration")
			}

			log.SetLevel(cfg.LogLevel)

			a := initApp(cfg)
			defer closeDB(&a)

			poller := app.NewPoller(&a)
			if err := poller.Start(); err != nil {
				return errors.Wrap(err, "starting scheduler poller")
			}
			defer poller.Stop()

			ctl := controllers.New(&a)
			rc := controllers.RouteConfig{
				APIRoutes:   controllers.NewAPIRoutes(&a, ctl),
				Controllers: ctl,
			}

			r, err := controllers.NewRouter(&a, rc)
			if err != nil {
				return errors.Wrap(err, "initializing router")
			}

			log.WithFields(log.Fields{
				"version": buildinfo.Version,
				"port":    cfg.Port,
			}).Info("AINotes server starting")

			return http.ListenAndServe(fmt.Sprintf(":%s", cfg.Port), r)
		},
	}

	cmd.Flags().StringVar(&port, "port", "", "server port (env: PORT, default: 8000)")
	cmd.Flags().StringVar(&databaseURL, "databaseUrl", "", "postgres connection string (env: DATABASE_URL)")
	cmd.Flags().BoolVar(&disableRegistration, "disableRegistration", false, "disable user registration (env: DisableRegistration)")
	cmd.Flags().StringVar(&logLevel, "logLevel", "", "log level: debug, info, warn, or error (env: LOG_LEVEL, default: info)")

	return cmd
}
