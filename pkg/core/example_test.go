package core_test

import (
	"fmt"

	"github.com/sitecfg/sitecfg/pkg/core"
)

// ExampleResolve shows the override contract: override keys win, everything
// else is inherited.
func ExampleResolve() {
	base := core.Settings{"theme": "hyde", "pagination_size": 10}
	overrides := core.Settings{"theme": "hyde-dark"}

	s := core.Resolve(base, overrides)
	fmt.Println(s["theme"], s["pagination_size"])
	// Output: hyde-dark 10
}

// ExampleLoad prints a few publish settings.
func ExampleLoad() {
	s := core.Load(core.Publish)
	fmt.Println(s["site_url"])
	fmt.Println(s["feed_all_atom"])
	fmt.Println(s["pagination_size"])
	// Output:
	// https://www.cameronmacleod.com
	// feeds/all.atom.xml
	// 10
}
