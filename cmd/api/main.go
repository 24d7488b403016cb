package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "clinic-scheduler",
		Short: "Clinic appointment scheduling API",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(createAdminCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	var admin adminFlags

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(admin)
		},
	}
	cmd.Flags().StringVar(&admin.username, "admin-username", "admin", "Username of the bootstrap admin")
	cmd.Flags().StringVar(&admin.email, "admin-email", "", "Create this admin on startup when it does not exist")
	cmd.Flags().StringVar(&admin.password, "admin-password", "", "Password of the bootstrap admin")
	return cmd
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrate(cmd.Context())
		},
	}
}

func createAdminCmd() *cobra.Command {
	var admin adminFlags

	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create an admin account",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreateAdmin(cmd.Context(), admin)
		},
	}
	cmd.Flags().StringVar(&admin.username, "username", "admin", "Admin username")
	cmd.Flags().StringVar(&admin.email, "email", "", "Admin email")
	cmd.Flags().StringVar(&admin.password, "password", "", "Admin password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}
