package regrep_test

import (
	"fmt"

	"github.com/coregx/regrep"
)

func ExampleCompile() {
	re, err := regrep.Compile(`(cat|dog)s?`)
	if err != nil {
		panic(err)
	}

	fmt.Println(re.MatchString("a dog ran"))
	fmt.Println(re.MatchString("a bird flew"))
	// Output:
	// true
	// false
}

func ExampleRegex_MatchString() {
	re := regrep.MustCompile(`^I see \d+ (cat|dog)s?$`)

	fmt.Println(re.MatchString("I see 42 dogs"))
	fmt.Println(re.MatchString("I see one dog"))
	// Output:
	// true
	// false
}

func ExampleRegex_FindStringIndex() {
	re := regrep.MustCompile(`\d+`)

	loc := re.FindStringIndex("hello123world")
	fmt.Println(loc[0], loc[1])
	// Output: 5 8
}
