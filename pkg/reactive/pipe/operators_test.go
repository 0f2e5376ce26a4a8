package pipe

import (
	"context"
	"strconv"
	"testing"

	"github.com/gostreamlab/pulse/internal/testutil"
	perrors "github.com/gostreamlab/pulse/pkg/common/errors"
	"github.com/gostreamlab/pulse/pkg/scheduling/executor"
)

type user struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func TestMapPreservesOrderAndCount(t *testing.T) {
	p := Map(FromSlice([]int{1, 2, 3, 4}), strconv.Itoa)

	sink := newRecordingSink[string]()
	Subscribe(p, sink)

	sink.Wait(t)
	got := sink.Values()
	testutil.AssertEqual(t, len(got), 4)
	for i, want := range []string{"1", "2", "3", "4"} {
		testutil.AssertEqual(t, got[i], want)
	}
	testutil.AssertEqual(t, sink.Completions()[0].Failed(), false)
}

func TestMapForwardsFailure(t *testing.T) {
	p := Map(Fail[int](errTest("upstream")), strconv.Itoa)

	sink := newRecordingSink[string]()
	Subscribe(p, sink)

	sink.Wait(t)
	testutil.AssertEqual(t, len(sink.Values()), 0)
	testutil.AssertEqual(t, sink.Completions()[0].Err().Error(), "upstream")
}

func TestCompactMapDropsAndConverts(t *testing.T) {
	// Empty strings are dropped; the rest map to their length.
	p := CompactMap(FromSlice([]string{"a", "bc", ""}), func(s string) (int, bool) {
		return len(s), s != ""
	})

	sink := newRecordingSink[int]()
	Subscribe(p, sink)

	sink.Wait(t)
	got := sink.Values()
	testutil.AssertEqual(t, len(got), 2)
	testutil.AssertEqual(t, got[0], 1)
	testutil.AssertEqual(t, got[1], 2)
	testutil.AssertEqual(t, sink.Completions()[0].Failed(), false)
}

func TestFilter(t *testing.T) {
	p := Filter(FromSlice([]int{1, 2, 3, 4, 5, 6}), func(n int) bool { return n%2 == 0 })

	sink := newRecordingSink[int]()
	Subscribe(p, sink)

	sink.Wait(t)
	got := sink.Values()
	testutil.AssertEqual(t, len(got), 3)
	testutil.AssertEqual(t, got[0], 2)
	testutil.AssertEqual(t, got[2], 6)
}

func TestDecodeWellFormed(t *testing.T) {
	body := []byte(`{"id":1,"name":"Ann","email":"a@x.com"}`)
	p := Decode[user](Just(body), JSON[user]())

	sink := newRecordingSink[user]()
	Subscribe(p, sink)

	sink.Wait(t)
	got := sink.Values()
	testutil.AssertEqual(t, len(got), 1)
	testutil.AssertEqual(t, got[0], user{ID: 1, Name: "Ann", Email: "a@x.com"})
	testutil.AssertEqual(t, sink.Completions()[0].Failed(), false)
}

func TestDecodeMalformedIsTerminal(t *testing.T) {
	p := Decode[user](Just([]byte(`{"id":`)), JSON[user]())

	sink := newRecordingSink[user]()
	Subscribe(p, sink)

	sink.Wait(t)
	testutil.AssertEqual(t, len(sink.Values()), 0)

	comps := sink.Completions()
	testutil.AssertEqual(t, len(comps), 1)
	testutil.AssertEqual(t, comps[0].Failed(), true)
	testutil.AssertEqual(t, perrors.IsDecode(comps[0].Err()), true)
}

func TestDecodeStopsAfterFirstFailure(t *testing.T) {
	// Second payload is malformed; the third must never be decoded.
	payloads := [][]byte{
		[]byte(`{"id":1,"name":"Ann","email":"a@x.com"}`),
		[]byte(`not json`),
		[]byte(`{"id":2,"name":"Bob","email":"b@x.com"}`),
	}
	p := Decode[user](FromSlice(payloads), JSON[user]())

	sink := newRecordingSink[user]()
	Subscribe(p, sink)

	sink.Wait(t)
	testutil.AssertEqual(t, len(sink.Values()), 1)
	testutil.AssertEqual(t, sink.Values()[0].Name, "Ann")
	testutil.AssertEqual(t, len(sink.Completions()), 1)
	testutil.AssertEqual(t, perrors.IsDecode(sink.Completions()[0].Err()), true)
}

func TestReceiveOnPreservesOrder(t *testing.T) {
	ui := executor.NewSerial()
	defer ui.Close()

	values := make([]int, 200)
	for i := range values {
		values[i] = i
	}
	p := ReceiveOn(FromSlice(values), ui)

	sink := newRecordingSink[int]()
	Subscribe(p, sink)

	sink.Wait(t)
	got := sink.Values()
	testutil.AssertEqual(t, len(got), 200)
	for i, v := range got {
		if v != i {
			t.Fatalf("order violated at index %d: got %d", i, v)
		}
	}
}

func TestReceiveOnImmediate(t *testing.T) {
	p := ReceiveOn(FromSlice([]int{1, 2, 3}), executor.Immediate())

	sink := newRecordingSink[int]()
	Subscribe(p, sink)

	sink.Wait(t)
	testutil.AssertEqual(t, len(sink.Values()), 3)
}

func TestFirstStopsUpstream(t *testing.T) {
	emitted := 0
	counting := PublisherFunc[int](func(ctx context.Context, next func(int), complete func(error)) {
		for i := 0; i < 100; i++ {
			if ctx.Err() != nil {
				return
			}
			emitted++
			next(i)
		}
		complete(nil)
	})

	sink := newRecordingSink[int]()
	Subscribe(First[int](counting), sink)

	sink.Wait(t)
	testutil.AssertEqual(t, len(sink.Values()), 1)
	testutil.AssertEqual(t, sink.Values()[0], 0)
	// Upstream observed the cancellation after the first emission.
	if emitted >= 100 {
		t.Errorf("upstream was not stopped early, emitted %d", emitted)
	}
}

func TestFirstOnEmptyUpstream(t *testing.T) {
	sink := newRecordingSink[int]()
	Subscribe(First(Empty[int]()), sink)

	sink.Wait(t)
	testutil.AssertEqual(t, len(sink.Values()), 0)
	testutil.AssertEqual(t, sink.Completions()[0].Failed(), false)
}

func TestOperatorChain(t *testing.T) {
	// compactMap -> map -> filter stacked on one source.
	src := FromSlice([]string{"10", "x", "20", "", "30"})
	parsed := CompactMap(src, func(s string) (int, bool) {
		n, err := strconv.Atoi(s)
		return n, err == nil
	})
	doubled := Map(parsed, func(n int) int { return n * 2 })
	big := Filter(doubled, func(n int) bool { return n > 30 })

	sink := newRecordingSink[int]()
	Subscribe(big, sink)

	sink.Wait(t)
	got := sink.Values()
	testutil.AssertEqual(t, len(got), 2)
	testutil.AssertEqual(t, got[0], 40)
	testutil.AssertEqual(t, got[1], 60)
}
