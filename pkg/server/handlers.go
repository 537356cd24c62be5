package server

import (
	"HikariCha/handler"
)

type Handlers struct {
	Achievement *handler.Achievement
	Points      *handler.Point
}
