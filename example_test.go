package fielddata_test

import (
	"errors"
	"fmt"
	"log"

	"github.com/hupe1980/fielddata"
	"github.com/hupe1980/fielddata/segment/faulty"
	"github.com/hupe1980/fielddata/segment/memseg"
)

// Example_load demonstrates reading a sparse field with a reusable buffer.
func Example_load() {
	seg, err := memseg.NewBuilder(1, 3).
		Add("_id", 0, []byte("alpha")).
		Add("_id", 2, []byte("gamma")).
		Build()
	if err != nil {
		log.Fatal(err)
	}

	dv, err := fielddata.Load(seg, "_id")
	if err != nil {
		log.Fatal(err)
	}

	values := dv.BytesValues()
	var buf []byte
	for doc := uint32(0); doc < uint32(dv.NumDocs()); doc++ {
		if !values.HasValue(doc) {
			fmt.Printf("%d: -\n", doc)
			continue
		}
		buf = values.ValueInto(doc, buf)
		fmt.Printf("%d: %s\n", doc, buf)
	}
	// Output:
	// 0: alpha
	// 1: -
	// 2: gamma
}

// Example_presence shows how presence follows from what the segment stores.
func Example_presence() {
	seg, err := memseg.NewBuilder(1, 2).
		Add("sparse", 0, []byte("x")).
		Dense("dense").
		Build()
	if err != nil {
		log.Fatal(err)
	}

	for _, field := range []string{"sparse", "dense", "missing"} {
		dv, err := fielddata.Load(seg, field)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("%s: %s\n", field, dv.Source().Presence().Policy())
	}
	// Output:
	// sparse: Explicit
	// dense: AllPresent
	// missing: AllAbsent
}

// Example_scriptValues demonstrates the cursor-based script view.
func Example_scriptValues() {
	seg, err := memseg.NewBuilder(1, 2).
		Add("name", 1, []byte("grace")).
		Build()
	if err != nil {
		log.Fatal(err)
	}

	dv, err := fielddata.Load(seg, "name")
	if err != nil {
		log.Fatal(err)
	}

	script := dv.ScriptValues()
	for doc := uint32(0); doc < 2; doc++ {
		script.SetNextDocID(doc)
		fmt.Printf("%d: empty=%v values=%v\n", doc, script.IsEmpty(), script.Values())
	}
	// Output:
	// 0: empty=true values=[]
	// 1: empty=false values=[grace]
}

// Example_cache shows that a session opens each field once.
func Example_cache() {
	seg, err := memseg.NewBuilder(7, 1).
		Add("_id", 0, []byte("a")).
		Build()
	if err != nil {
		log.Fatal(err)
	}
	r := faulty.New(seg)

	cache := fielddata.NewCache()
	for i := 0; i < 3; i++ {
		if _, err := cache.Load(r, "_id"); err != nil {
			log.Fatal(err)
		}
	}
	fmt.Println("opens:", r.ColumnOpens("_id"))
	fmt.Println("evicted:", cache.Evict(seg.ID()))
	// Output:
	// opens: 1
	// evicted: 1
}

// Example_errors demonstrates matching load failures.
func Example_errors() {
	seg, err := memseg.NewBuilder(3, 1).Build()
	if err != nil {
		log.Fatal(err)
	}
	r := faulty.New(seg)
	r.AddRule("_id", faulty.Fault{OrphanPresence: true})

	_, err = fielddata.Load(r, "_id")

	var le *fielddata.LoadError
	fmt.Println(errors.Is(err, fielddata.ErrInconsistentStore))
	fmt.Println(errors.As(err, &le), le.Field, le.SegmentID)
	// Output:
	// true
	// true _id 3
}
