// Seeds a department so registration has an invite token to match.
// Safe to re-run: an existing department with the same invite token is
// reported and left untouched.
package main

import (
	"flag"
	"fmt"

	"github.com/techflow-dev/techflow/internal/config"
	"github.com/techflow-dev/techflow/internal/errors"
	"github.com/techflow-dev/techflow/internal/logger"
	"github.com/techflow-dev/techflow/internal/storage/pg"
	"github.com/techflow-dev/techflow/internal/utils"
)

func main() {
	var configFolder, name, inviteToken, adminToken string
	flag.StringVar(&configFolder, "config_folder", "config", "path to folder with configs")
	flag.StringVar(&name, "name", "", "department name")
	flag.StringVar(&inviteToken, "invite_token", "", "member invite token (generated when empty)")
	flag.StringVar(&adminToken, "admin_token", "", "admin invite token (generated when empty)")
	flag.Parse()

	if name == "" {
		fmt.Println("usage: techflow-seed -name <department name> [-invite_token ...] [-admin_token ...]")
		return
	}

	cfg := config.MustLoad(configFolder)
	logger.Initialize(cfg.Public.LogLevel, cfg.Public.LogJSON)

	storage, err := pg.New(cfg)
	if err != nil {
		logger.Log.Error("failed to connect to storage", "error", err)
		return
	}
	defer storage.Cleanup()

	if inviteToken == "" {
		inviteToken = utils.GenerateInviteToken(12)
	}
	if adminToken == "" {
		adminToken = utils.GenerateInviteToken(6)
	}

	if existing, err := storage.DepartmentByInviteToken(inviteToken); err == nil {
		logger.Log.Info("department already exists", "name", existing.Name, "inviteToken", existing.InviteToken)
		return
	} else if !errors.IsNotFound(err) {
		logger.Log.Error("failed to check for existing department", "error", err)
		return
	}

	department, err := storage.CreateDepartment(name, inviteToken, adminToken)
	if err != nil {
		logger.Log.Error("failed to seed department", "error", err)
		return
	}

	fmt.Printf("Department seeded: %s (id %d)\n", department.Name, department.Id)
	fmt.Printf("  invite token: %s\n", department.InviteToken)
	fmt.Printf("  admin invite token: %s\n", department.AdminInviteToken)
}
