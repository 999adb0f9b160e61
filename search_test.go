package linklist

import "testing"

func TestEmptyListOperations(t *testing.T) {
	l := newTestList(t)
	_, err := l.FindRecord(rec("x"), CompareBytes)
	wantCode(t, err, NullList)
	_, err = l.CurrentRecord()
	wantCode(t, err, NullList)
	_, err = l.PriorRecord()
	wantCode(t, err, NullList)
	_, err = l.NextRecord()
	wantCode(t, err, NullList)
	_, err = l.FindNthRecord(1)
	wantCode(t, err, NullList)
	wantCode(t, l.DeleteCurrentRecord(), NullList)
	wantCode(t, l.ToHead(), NullList)
	wantCode(t, l.ToTail(), NullList)
	if !l.IsEmpty() || l.Count() != 0 {
		t.Fatalf("list not empty")
	}
}

func TestSetSearchModes(t *testing.T) {
	l := newTestList(t)
	if err := l.SetSearchModes(OriginDefault, DirDefault); err != nil {
		t.Fatalf("defaults: %v", err)
	}
	wantCode(t, l.SetSearchModes(Origin(10), DirDefault), NotModified)
	wantCode(t, l.SetSearchModes(OriginDefault, Direction(10)), NotModified)
	wantCode(t, l.SetSearchModes(OriginTail, Direction(-1)), NotModified)
	if origin, dir := l.SearchModes(); origin != OriginHead || dir != DirDown {
		t.Fatalf("rejected call changed modes: %v/%v", origin, dir)
	}

	if err := l.SetSearchModes(OriginTail, DirUp); err != nil {
		t.Fatalf("set: %v", err)
	}
	if origin, dir := l.SearchModes(); origin != OriginTail || dir != DirUp {
		t.Fatalf("expected TAIL/UP, got %v/%v", origin, dir)
	}
	// default keeps the other field
	if err := l.SetSearchModes(OriginCurrent, DirDefault); err != nil {
		t.Fatalf("set: %v", err)
	}
	if origin, dir := l.SearchModes(); origin != OriginCurrent || dir != DirUp {
		t.Fatalf("expected CURRENT/UP, got %v/%v", origin, dir)
	}
}

func TestFindRecord(t *testing.T) {
	l := newTestList(t)
	_, err := l.FindRecord(rec("x"), nil)
	wantCode(t, err, NullFunction)
	_, err = l.FindRecord(rec("x"), CompareCString)
	wantCode(t, err, NullList)

	addAll(t, l, fixture[:3], nil)
	got, err := l.FindRecord(rec(fixture[1]), CompareCString)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if str(got) != fixture[1] || l.CurrentIndex() != 2 {
		t.Fatalf("found %q at %d", str(got), l.CurrentIndex())
	}

	_, err = l.FindRecord(rec("Record not found."), CompareCString)
	wantCode(t, err, NotFound)
	if l.CurrentIndex() != 2 {
		t.Fatalf("failed find moved cursor to %d", l.CurrentIndex())
	}

	st := l.GetStats()
	if st.Hits != 1 || st.Misses != 1 || st.HitRatio != 50 {
		t.Fatalf("unexpected stats %+v", st)
	}
}

func TestFindRecordFirstMatch(t *testing.T) {
	l := newTestList(t)
	addAll(t, l, []string{"AAAA-1", "BBBB-1", "AAAA-2"}, nil)
	byPrefix := func(a, b []byte) int { return CompareBytes(a[:4], b[:4]) }
	got, err := l.FindRecord(rec("AAAA"), byPrefix)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if str(got) != "AAAA-1" || l.CurrentIndex() != 1 {
		t.Fatalf("expected first match, got %q at %d", str(got), l.CurrentIndex())
	}
}

func findNth(t *testing.T, l *List, skip uint64, want string, wantIdx uint64) {
	t.Helper()
	got, err := l.FindNthRecord(skip)
	if err != nil {
		t.Fatalf("find nth %d: %v", skip, err)
	}
	if str(got) != want || l.CurrentIndex() != wantIdx {
		t.Fatalf("find nth %d: got %q at %d, want %q at %d", skip, str(got), l.CurrentIndex(), want, wantIdx)
	}
}

func findNthMiss(t *testing.T, l *List, skip uint64) {
	t.Helper()
	before := l.CurrentIndex()
	_, err := l.FindNthRecord(skip)
	wantCode(t, err, NotFound)
	if l.CurrentIndex() != before {
		t.Fatalf("find nth %d moved cursor from %d to %d", skip, before, l.CurrentIndex())
	}
}

func TestFindNthRecord(t *testing.T) {
	l := newTestList(t)
	addAll(t, l, fixture, nil)
	if l.Count() != 6 || l.CurrentIndex() != 6 {
		t.Fatalf("count=%d idx=%d", l.Count(), l.CurrentIndex())
	}

	// HEAD/DOWN (defaults)
	findNth(t, l, 1, fixture[1], 2)
	findNth(t, l, 5, fixture[5], 6)
	findNthMiss(t, l, 0)
	findNthMiss(t, l, 6)

	// TAIL/UP
	if err := l.SetSearchModes(OriginTail, DirUp); err != nil {
		t.Fatalf("set modes: %v", err)
	}
	findNth(t, l, 1, fixture[4], 5)
	findNth(t, l, 5, fixture[0], 1)
	findNthMiss(t, l, 6)

	// CURRENT/DOWN
	l.SetSearchModes(OriginCurrent, DirDown)
	l.Increment()
	l.Increment()
	findNth(t, l, 1, fixture[3], 4)
	findNthMiss(t, l, 3)

	// CURRENT/UP
	l.SetSearchModes(OriginCurrent, DirUp)
	findNth(t, l, 1, fixture[2], 3)
	findNthMiss(t, l, 3)
}

func TestFindNthRecordIndependentModes(t *testing.T) {
	l := newTestList(t)
	addAll(t, l, fixture[:4], nil)

	// walking up from the head leaves the list at once
	l.SetSearchModes(OriginHead, DirUp)
	findNthMiss(t, l, 1)

	// walking down from the tail too
	l.SetSearchModes(OriginTail, DirDown)
	findNthMiss(t, l, 1)

	// zero skip is a miss for every mode pair
	for _, o := range []Origin{OriginHead, OriginCurrent, OriginTail} {
		for _, d := range []Direction{DirDown, DirUp} {
			l.SetSearchModes(o, d)
			findNthMiss(t, l, 0)
		}
	}
}

func TestGetPriorNextRecord(t *testing.T) {
	l := newTestList(t)
	addAll(t, l, fixture[:2], nil)

	l.ToTail()
	got, err := l.PriorRecord()
	if err != nil {
		t.Fatalf("prior: %v", err)
	}
	if str(got) != fixture[0] || l.CurrentIndex() != 1 {
		t.Fatalf("prior: %q at %d", str(got), l.CurrentIndex())
	}
	_, err = l.PriorRecord()
	wantCode(t, err, NotFound)
	if l.CurrentIndex() != 1 {
		t.Fatalf("failed prior moved cursor")
	}

	got, err = l.NextRecord()
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	if str(got) != fixture[1] || l.CurrentIndex() != 2 {
		t.Fatalf("next: %q at %d", str(got), l.CurrentIndex())
	}
	_, err = l.NextRecord()
	wantCode(t, err, NotFound)

	got, err = l.CurrentRecord()
	if err != nil || str(got) != fixture[1] || l.CurrentIndex() != 2 {
		t.Fatalf("current: %q at %d (%v)", str(got), l.CurrentIndex(), err)
	}
}
