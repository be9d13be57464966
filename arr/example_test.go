package arr_test

import (
	"fmt"

	"github.com/hasbyte1/go-primitives/arr"
)

func ExamplePathMap_Get() {
	m := arr.NewPathMap(map[string]any{
		"user": map[string]any{
			"address": map[string]any{"city": "London"},
		},
	})
	fmt.Println(m.Get("user.address.city"))
	fmt.Println(m.Get("user.address.postcode", "unknown"))
	// Output:
	// London
	// unknown
}

func ExamplePathMap_Set() {
	m := arr.NewPathMap()
	m.Set("config.debug", true)
	fmt.Println(m.Get("config.debug"))
	fmt.Println(m.Has("config"))
	// Output:
	// true
	// true
}

func ExamplePathMap_Count() {
	m := arr.NewPathMap()
	m.Set("tags", []string{"a", "b", "c"})
	m.Set("name", "x")
	fmt.Println(m.Count("tags"), m.Count("name"), m.Count("missing"))
	fmt.Println(m.CountMany("tags", "name", "missing"))
	// Output:
	// 3 1 -1
	// 3
}

func ExamplePathMap_All() {
	m := arr.NewPathMap()
	m.Set("b", 1)
	m.Set("a", 2)
	for k, v := range m.All() {
		fmt.Println(k, v)
	}
	// Output:
	// b 1
	// a 2
}

func ExamplePathMap_Dot() {
	m := arr.NewPathMap(map[string]any{
		"db": map[string]any{
			"host": "localhost",
			"port": 5432,
		},
	})
	flat := m.Dot()
	fmt.Println(flat["db.host"], flat["db.port"])
	// Output: localhost 5432
}
