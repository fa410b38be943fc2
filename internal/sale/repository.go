package sale

import (
	"context"

	"github.com/fekuna/omnipos-pos-service/internal/model"
)

type Repository interface {
	// Record stores the header and every item in one transaction and returns
	// the generated sale id.
	Record(ctx context.Context, sale *model.Sale) (int64, error)
	FindByID(ctx context.Context, id int64) (*model.Sale, error)
}

// EventPublisher announces finalized sales to other services.
type EventPublisher interface {
	PublishSaleFinalized(ctx context.Context, sale *model.Sale) error
}
