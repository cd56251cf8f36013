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

	"github.com/ainotes/ainotes/pkg/server/config"
	"github.com/ainotes/ainotes/pkg/server/database"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

func newUserCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage users",
	}

	cmd.AddCommand(newUserCreateCmd())

	return cmd
}

// newUserCreateCmd creates a user directly, bypassing email verification.
// It is meant for bootstrapping an instance.
func newUserCreateCmd() *cobra.Command {
	var fullName string
	var email string
	var password string
	var databaseURL string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a user without email verification",
		RunE: func(cmd *cobra.Command, args []string) error {
			if email == "" {
				return errors.New("email is required")
			}
			if password == "" {
				return errors.New("password is required")
			}

			cfg, err := config.New(config.Params{DatabaseURL: databaseURL})
			if err != nil {
				return errors.Wrap(err, "loading configuration")
			}

			db := initDB(cfg.DatabaseURL)
			defer func() {
				if sqlDB, err := db.DB(); err == nil {
					sqlDB.Close()
				}
			}()

			hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
			if err != nil {
				return errors.Wrap(err, "hashing password")
			}

			user := database.User{
				FullName: fullName,
				Email:    email,
				Password: string(hashed),
			}
			if err := db.Create(&user).Error; err != nil {
				return errors.Wrap(err, "creating user")
			}

			fmt.Printf("Created user %s\n", email)
			return nil
		},
	}

	cmd.Flags().StringVar(&fullName, "fullName", "", "user full name")
	cmd.Flags().StringVar(&email, "email", "", "user email address (required)")
	cmd.Flags().StringVar(&password, "password", "", "user password (required)")
	cmd.Flags().StringVar(&databaseURL, "databaseUrl", "", "postgres connection string (env: DATABASE_URL)")

	return cmd
}
