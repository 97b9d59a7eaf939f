//go:build wireinject

package service

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	wire.Struct(new(UserService), "*"),
	wire.Bind(new(IUserService), new(*UserService)),

	wire.Struct(new(PostService), "*"),
	wire.Bind(new(IPostService), new(*PostService)),

	wire.Struct(new(EngagementService), "*"),
	wire.Bind(new(IEngagementService), new(*EngagementService)),

	wire.Struct(new(FeedService), "*"),
	wire.Bind(new(IFeedService), new(*FeedService)),

	wire.Struct(new(ResourceService), "*"),
	wire.Bind(new(IResourceService), new(*ResourceService)),
)
