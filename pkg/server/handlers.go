package server

import (
	"campuswall/handler"
)

type Handlers struct {
	User     *handler.User
	Post     *handler.Post
	Resource *handler.Resource
}
