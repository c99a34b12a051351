package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"newsletter/internal/auth"
	"newsletter/pkg/logger"
)

// hashCommand constructs the 'hash' subcommand that generates an argon2id PHC
// string for a given password, suitable for inserting into the users table
// when provisioning operator accounts.
func hashCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hash",
		Short: "Generates an argon2id password hash for operator provisioning",
		Run: func(cmd *cobra.Command, args []string) {
			password, _ := cmd.Flags().GetString("password")

			phc, err := auth.GeneratePHC(password, auth.DefaultHashParams)
			if err != nil {
				logger.Fatal(context.Background(), "could not hash password", zap.Error(err))
			}

			fmt.Println(phc) //nolint: forbidigo
		},
	}

	cmd.Flags().String("password", "", "Password to hash")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}
