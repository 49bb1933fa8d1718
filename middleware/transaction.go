package middleware

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const dbKey = "db"

// Transaction scopes one database transaction to each request: begin
// at entry, commit when the handler chain returns nil, roll back on
// any error. Handlers reach the transaction through DB; nothing else
// touches the root handle mid-request, so a failed request never
// leaves a partial write behind.
func Transaction(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tx := db.WithContext(c.UserContext()).Begin()
		if tx.Error != nil {
			return tx.Error
		}
		c.Locals(dbKey, tx)

		// A panic must not leave the transaction open; re-raise for the
		// recover middleware after rolling back.
		defer func() {
			if r := recover(); r != nil {
				tx.Rollback()
				panic(r)
			}
		}()

		if err := c.Next(); err != nil {
			tx.Rollback()
			return err
		}
		return tx.Commit().Error
	}
}

// DB returns the request-scoped transaction.
func DB(c *fiber.Ctx) *gorm.DB {
	return c.Locals(dbKey).(*gorm.DB)
}
