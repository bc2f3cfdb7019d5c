package mysql

import (
	"errors"
	"strings"

	"marketplace/internal/domain"

	mysqldrv "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

const errDuplicateEntry = 1062

// classify turns unique-index violations into domain conflicts. The index
// name in the driver message tells the two user uniqueness rules apart.
func classify(err error) error {
	var me *mysqldrv.MySQLError
	if errors.As(err, &me) && me.Number == errDuplicateEntry {
		switch {
		case strings.Contains(me.Message, "idx_users_admin_slot"):
			return domain.ErrAdminExists
		case strings.Contains(me.Message, "idx_users_email"):
			return domain.ErrEmailTaken
		}
	}
	return err
}

func notFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
