package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"

	"conandweb/internal/adapters/auth"
	"conandweb/internal/domain"
	"conandweb/internal/repository/postgres"
	"conandweb/internal/services"
)

var (
	userEmail    string
	userPassword string
	userName     string
	userRole     string
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage operator accounts",
}

var userCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an operator account",
	Long:  `Creates an admin or editor account that can log in to the admin API.`,
	RunE:  runUserCreate,
}

func init() {
	userCreateCmd.Flags().StringVar(&userEmail, "email", "", "login email")
	userCreateCmd.Flags().StringVar(&userPassword, "password", "", "password (min. 8 characters)")
	userCreateCmd.Flags().StringVar(&userName, "name", "", "display name")
	userCreateCmd.Flags().StringVar(&userRole, "role", domain.RoleEditor, "admin or editor")
	_ = userCreateCmd.MarkFlagRequired("email")
	_ = userCreateCmd.MarkFlagRequired("password")
	userCmd.AddCommand(userCreateCmd)
	rootCmd.AddCommand(userCmd)
}

func runUserCreate(cmd *cobra.Command, args []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}
	db, err := a.openDB(cmd.Context())
	if err != nil {
		return err
	}
	defer db.Close()

	svc := services.NewAuthService(
		postgres.NewUserRepository(db),
		auth.NewBcryptHasher(bcrypt.DefaultCost),
		auth.NewJWT(a.cfg.JWTSecret, jwtIssuer),
		a.cfg.JWTExpiry,
		a.cfg.RequestTimeout,
	)
	user, err := svc.CreateUser(cmd.Context(), userEmail, userPassword, userName, userRole)
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	a.logger.Info("user created", "id", user.ID, "email", user.Email, "role", user.Role, "at", user.CreatedAt.Format(time.RFC3339))
	return nil
}
