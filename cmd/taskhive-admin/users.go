package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/taskhive/taskhive-api/internal/data"
	domainauth "github.com/taskhive/taskhive-api/internal/domain/auth"
	"github.com/taskhive/taskhive-api/internal/domain/model"
	"github.com/taskhive/taskhive-api/internal/service"
	"github.com/taskhive/taskhive-api/internal/util"
)

func newUserService(db *sql.DB) *service.UserService {
	return service.NewUserService(service.UserServiceOptions{
		Users:   data.NewUserRepo(db),
		History: data.NewLoginHistoryRepo(db),
	})
}

type userListOptions struct {
	Limit  int
	Offset int
}

func parseUserListFlags(args []string) (*userListOptions, error) {
	fs := flag.NewFlagSet("user-list", flag.ContinueOnError)
	limit := fs.Int("limit", 50, "maximum number of users to list")
	offset := fs.Int("offset", 0, "number of users to skip")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return &userListOptions{Limit: *limit, Offset: *offset}, nil
}

func runUserList(cmdCtx *commandContext, args []string) error {
	opts, err := parseUserListFlags(args)
	if err != nil {
		return err
	}

	db, err := connectDB(cmdCtx.Logger, &cmdCtx.Config)
	if err != nil {
		return err
	}
	defer closeDB(cmdCtx.Logger, db)

	users, err := newUserService(db).List(cmdCtx.Ctx, opts.Limit, opts.Offset)
	if err != nil {
		return fmt.Errorf("list users: %w", err)
	}

	return printUsers(os.Stdout, users, time.Now())
}

func printUsers(w io.Writer, users []*model.User, now time.Time) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	if err := writef(tw, "ID\tEMAIL\tNAME\tROLE\tSTATUS\tCREATED\n"); err != nil {
		return err
	}
	for _, u := range users {
		err := writef(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			u.ID, u.Email, u.Name, u.Role,
			util.FormatActive(u.IsActive),
			util.FormatSince(u.CreatedAt, now))
		if err != nil {
			return err
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	return writef(w, "\n%d user(s)\n", len(users))
}

type userSelector struct {
	ID    string
	Email string
}

func (s *userSelector) register(fs *flag.FlagSet) {
	fs.StringVar(&s.ID, "id", "", "user ID")
	fs.StringVar(&s.Email, "email", "", "user email")
}

// resolve returns the ID of the selected user, looking the email up when
// no ID was given.
func (s *userSelector) resolve(ctx context.Context, db *sql.DB) (string, error) {
	switch {
	case s.ID != "" && s.Email != "":
		return "", errors.New("specify either -id or -email, not both")
	case s.ID != "":
		return s.ID, nil
	case s.Email != "":
		user, err := data.NewUserRepo(db).GetByEmail(ctx, s.Email)
		if err != nil {
			return "", fmt.Errorf("look up user by email: %w", err)
		}
		return user.ID, nil
	default:
		return "", errors.New("one of -id or -email is required")
	}
}

func runUserSetRole(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("user-set-role", flag.ContinueOnError)
	var sel userSelector
	sel.register(fs)
	role := fs.String("role", "", "role to assign (admin or user)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if !domainauth.Role(*role).Valid() {
		return fmt.Errorf("invalid role %q (valid options: admin, user)", *role)
	}

	db, err := connectDB(cmdCtx.Logger, &cmdCtx.Config)
	if err != nil {
		return err
	}
	defer closeDB(cmdCtx.Logger, db)

	id, err := sel.resolve(cmdCtx.Ctx, db)
	if err != nil {
		return err
	}

	user, err := newUserService(db).SetRole(cmdCtx.Ctx, id, *role)
	if err != nil {
		return fmt.Errorf("set role: %w", err)
	}

	cmdCtx.Logger.Info("role updated", "id", user.ID, "email", user.Email, "role", user.Role)
	return nil
}

func runUserActivate(cmdCtx *commandContext, args []string) error {
	return setUserActive(cmdCtx, "user-activate", args, true)
}

func runUserDeactivate(cmdCtx *commandContext, args []string) error {
	return setUserActive(cmdCtx, "user-deactivate", args, false)
}

func setUserActive(cmdCtx *commandContext, name string, args []string, active bool) error {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	var sel userSelector
	sel.register(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	db, err := connectDB(cmdCtx.Logger, &cmdCtx.Config)
	if err != nil {
		return err
	}
	defer closeDB(cmdCtx.Logger, db)

	id, err := sel.resolve(cmdCtx.Ctx, db)
	if err != nil {
		return err
	}

	user, err := newUserService(db).SetActive(cmdCtx.Ctx, id, active)
	if err != nil {
		return fmt.Errorf("set active: %w", err)
	}

	cmdCtx.Logger.Info("account status updated",
		"id", user.ID, "email", user.Email, "status", util.FormatActive(user.IsActive))
	return nil
}
