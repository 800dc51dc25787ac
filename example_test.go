package keystone_test

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/keystone-di/keystone"
)

type config struct{ dsn string }
type database struct{ dsn string }

func ExampleNew() {
	r := keystone.New(keystone.WithLogger(zap.NewNop()))

	keystone.RegisterSingleton(r, func() (*config, error) {
		return &config{dsn: "postgres://localhost"}, nil
	})
	keystone.RegisterTransientWithDeps(r,
		keystone.NewDeps1(keystone.SingletonOf[*config]()),
		func(d keystone.Deps1[keystone.SingletonDep[*config]]) (*database, error) {
			return &database{dsn: d.D1.Get().Get().dsn}, nil
		},
	)

	db, err := keystone.ResolveTransient[*database](context.Background(), r)
	if err != nil {
		panic(err)
	}

	fmt.Println(db.Get().dsn)
	// Output: postgres://localhost
}

func ExampleRegistry_Child() {
	parent := keystone.New()
	keystone.RegisterSingleton(parent, func() (*config, error) {
		return &config{dsn: "parent-dsn"}, nil
	})

	child := parent.Child()
	keystone.RegisterSingleton(child, func() (*config, error) {
		return &config{dsn: "child-dsn"}, nil
	})

	fromChild, _ := keystone.ResolveSingleton[*config](context.Background(), child)
	fromParent, _ := keystone.ResolveSingleton[*config](context.Background(), parent)

	fmt.Println(fromChild.Get().dsn)
	fmt.Println(fromParent.Get().dsn)
	// Output:
	// child-dsn
	// parent-dsn
}
