package usecase

import (
	"context"
	"fmt"

	"github.com/avc-dev/shortlinks/internal/model"
	"github.com/avc-dev/shortlinks/internal/service"
	"go.uber.org/zap"
)

// UpdateShortLink заменяет видимость и признак удаления.
// Отсутствующие в запросе поля принимают значения по умолчанию.
func (u *URLUsecase) UpdateShortLink(ctx context.Context, shortID string, requester model.Identity, req model.UpdateLinkRequest) (model.LinkResponse, error) {
	visibility, err := model.ParseVisibility(req.Visibility)
	if err != nil {
		return model.LinkResponse{}, fmt.Errorf("%w: %w", service.ErrInvalidVisibility, err)
	}

	state := model.LinkState{Visibility: visibility, Deleted: req.Deleted}

	link, err := u.links.Update(ctx, shortID, requester, state)
	if err != nil {
		return model.LinkResponse{}, u.classify("update short link", err,
			zap.String("short_id", shortID),
			zap.Stringer("requester", requester),
		)
	}

	u.logger.Info("short link updated",
		zap.String("link_id", link.ID.String()),
		zap.String("type", string(link.Visibility)),
		zap.Bool("is_deleted", link.Deleted),
	)

	return u.toResponse(link)
}

// DeleteShortLink физическое удаление не поддерживается
func (u *URLUsecase) DeleteShortLink(ctx context.Context, shortID string) error {
	return u.links.Delete(ctx, shortID)
}
