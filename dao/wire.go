//go:build wireinject

package dao

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewUserDAO,
	NewPostDAO,
	NewPostLikeDAO,
	NewPostStatsDAO,
	NewCommentDAO,
	NewResourceDAO,
)
