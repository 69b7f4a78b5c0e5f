package mongodb

import (
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mikiasgoitom/MidnightMuse/internal/domain/entity"
)

// notFound maps the driver's no-documents error onto the domain sentinel.
func notFound(err error, what, id string) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return fmt.Errorf("%s %s: %w", what, id, entity.ErrNotFound)
	}
	return err
}
