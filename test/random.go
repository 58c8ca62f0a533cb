package test

import (
	"math/rand"

	"github.com/jaswdr/faker"
	"github.com/onsi/ginkgo/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	Faker  = faker.NewWithSeed(Source)
	Rand   = rand.New(Source)
	Source = rand.NewSource(ginkgo.GinkgoRandomSeed())
)

func RandomObjectIdHex() string {
	return primitive.NewObjectID().Hex()
}

func RandomUserId() string {
	return Faker.UUID().V4()
}

// RandomFloatBetween returns a value in [min, max)
func RandomFloatBetween(min, max float64) float64 {
	return min + Rand.Float64()*(max-min)
}
