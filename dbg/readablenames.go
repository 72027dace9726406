package dbg

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/logrusorgru/aurora"
)

// This converts arbitrary keys (element ids, pointers, anything comparable)
// into random readable names. It never forgets a name, so it grows with every
// new key, but names are generated lazily, so it costs nothing unless it's
// used. This is helpful for telling opaque ids apart in debug logs.

var (
	mu   sync.Mutex
	memo map[interface{}]string
)

func init() {
	memo = make(map[interface{}]string)
	// Since the names are generated in order of demand, we make them
	// nondeterministic to remind the user that the same name doesn't refer to
	// the same thing between runs.
	petname.NonDeterministicMode()
}

func Name(obj interface{}) string {
	if isEmpty(obj) {
		return "Ø"
	}

	mu.Lock()
	defer mu.Unlock()
	if r, ok := memo[obj]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[obj] = r
	return r
}

// Like Name, but coloured for the terminal: green for keys seen before this
// call, cyan for a key named for the first time.
func ColorName(obj interface{}) string {
	mu.Lock()
	_, seen := memo[obj]
	mu.Unlock()
	name := Name(obj)
	if seen {
		return aurora.Green(name).String()
	}
	return aurora.Cyan(name).String()
}

func isEmpty(obj interface{}) bool {
	if obj == nil {
		return true
	}
	v := reflect.ValueOf(obj)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return v.IsZero()
}
