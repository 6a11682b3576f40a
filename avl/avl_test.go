// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"bytes"
	"math/rand/v2"
	"slices"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/treeset/avl"
)

func TestListShort(t *testing.T) {
	addList := []string{
		"4201", "1254", "8608", "1639", "8950",
		"6740",
	}
	doList(t, addList)
	doTraverse(t, addList)
}

// to make sure that lots of duplicates do not increment the node
// count incorrectly
func TestListDuplicates(t *testing.T) {
	addList := []string{
		"1720", "0506", "8382", "6774", "1247",
		"1250", "1264", "1258", "1255", "2247",
		"2004", "2194", "2644", "2169", "8133",
		"2136", "9651", "4079", "1042", "3579",
		"3630", "1427", "5843", "9549", "5433",
		"1274", "9034", "4724", "6179", "5072",
		"9272", "4030", "4205", "3363", "8582",
		"1720", "0506", "8382", "6774", "1042",

		"1042", "1042", "1042", "1042", "1042",
		"1042", "1042", "1042", "1042", "1042",
		"1042", "1042", "1042", "1042", "1042",
		"1042", "1042", "1042", "1042", "1042",
		"1042", "1042", "1042", "1042", "1042",
		"1042", "1042", "1042", "1042", "1042",
		"1042", "1042", "1042", "1042", "1042",
	}
	doList(t, addList)
	doTraverse(t, addList)
}

func TestListLong(t *testing.T) {
	addList := []string{
		"8133", "2136", "9651", "4079", "1042",
		"3579", "3630", "1427", "5843", "9549",
		"5433", "1274", "9034", "4724", "6179",
		"5072", "9272", "4030", "4205", "3363",
		"8582", "1720", "0506", "8382", "6774",
		"3088", "2329", "9039", "6703", "1027",
		"7297", "6063", "4156", "1005", "0982",
		"3065", "2553", "0795", "8426", "2377",
		"0877", "9085", "5918", "2581", "7797",
		"3028", "5880", "3061", "5212", "6539",
		"1320", "3581", "3334", "4348", "2934",
		"8342", "8814", "8736", "1353", "3082",
		"9620", "0056", "5063", "1245", "7066",
		"7435", "2999", "7803", "1303", "1697",
		"0017", "4314", "9926", "7587", "2531",
		"8123", "5693", "7495", "9975", "5465",
		"4342", "7958", "7138", "9382", "0672",
		"5402", "0204", "2397", "2712", "0938",
		"9610", "3611", "2140", "4289", "9271",
		"4786", "4145", "1066", "4366", "6716",
		"8579", "1012", "5935", "8278", "5761",
		"1871", "6257", "2649", "8643", "1239",
		"3416", "6146", "7127", "9517", "5788",
		"9025", "6880", "9064", "4849", "4503",
		"4898", "6815", "8811", "6745", "6907",
		"7503", "9869", "5491", "9940", "5955",
		"3764", "3254", "8048", "5339", "2406",
		"3137", "0251", "0486", "4202", "1844",
		"1741", "7154", "4286", "5160", "9472",
		"2998", "1935", "4758", "6478", "9572",
		"9254", "6848", "3126", "1848", "7692",
		"2791", "1504", "3469", "9701", "5077",
		"7928", "7978", "5383", "4319", "8197",
		"9227", "1166", "4216", "0866", "1791",
		"5395", "4310", "4452", "6140", "1494",
		"8859", "3394", "5507", "7295", "5408",
		"7789", "8237", "6990", "6882", "8243",
		"8894", "4352", "6727", "7019", "3126",
		"3102", "2948", "8242", "5027", "8892",
		"3492", "1323", "1101", "4526", "5177",
		"6175", "6664", "2742", "6094", "9877",
		"2534", "2105", "6588", "9982", "3696",
		"3480", "2244", "7487", "2844", "3199",
		"5829", "6952", "6915", "0905", "7615",
	}

	doList(t, addList)
	doTraverse(t, addList)
}

// check the whole tree, printing it on failure
func checkTree(t *testing.T, tree *avl.Tree[string], stage string) {
	t.Helper()
	if err := tree.Check(); nil != err {
		var b bytes.Buffer
		depth := tree.Print(&b, true)
		t.Logf("tree:\n%s", b.String())
		t.Logf("depth: %d", depth)
		t.Fatalf("%s: inconsistent tree: %s", stage, err)
	}
}

func doList(t *testing.T, addList []string) {

	for i := 0; i < len(addList)+1; i += 1 {

		alreadyDeleted := make(map[string]struct{})

		tree := avl.New(strings.Compare)
		for _, key := range addList {
			tree.Insert(key)
			checkTree(t, tree, "add")
		}

	delete_items:
		for _, key := range addList[:i] {
			if _, ok := alreadyDeleted[key]; ok {
				continue delete_items
			}
			alreadyDeleted[key] = struct{}{}
			if !tree.Delete(key) {
				t.Fatalf("delete: %q  was not found", key)
			}
		}

		checkTree(t, tree, "delete")

	delete_remainder:
		for _, key := range addList[i:] {
			if _, ok := alreadyDeleted[key]; ok {
				continue delete_remainder
			}
			alreadyDeleted[key] = struct{}{}
			if !tree.Delete(key) {
				t.Fatalf("delete remainder: %q  was not found", key)
			}
			checkTree(t, tree, "delete remainder")
		}
		if !tree.IsEmpty() {
			var b bytes.Buffer
			tree.Print(&b, true)
			t.Fatalf("remainder: remaining nodes:\n%s", b.String())
		}
	}
}

// traverse the tree to check the enumeration
func doTraverse(t *testing.T, addList []string) {

	unique := make(map[string]struct{})
	tree := avl.New(strings.Compare)
	for _, key := range addList {
		unique[key] = struct{}{}
		tree.Insert(key)
	}

	expected := make([]string, 0, len(unique))
	for key := range unique {
		expected = append(expected, key)
	}
	sort.Strings(expected)

	actual := slices.Collect(tree.Enumerate())
	assert.Equal(t, expected, actual, "enumeration differs")

	if len(expected) != tree.Count() {
		t.Fatalf("tree count: actual: %d  expected: %d", tree.Count(), len(expected))
	}

	// delete remainder
	for _, key := range expected {
		tree.Delete(key)
	}

	if !tree.IsEmpty() {
		t.Fatalf("remainder: remaining nodes")
	}
	if 0 != tree.Count() {
		t.Fatalf("remaining count not zero: %d", tree.Count())
	}
}

// ascending keys force a rotation at nearly every step
func TestAscendingSeven(t *testing.T) {
	tree := avl.NewOrdered[int]()
	for i := 1; i <= 7; i += 1 {
		tree.Insert(i)
		if err := tree.Check(); nil != err {
			t.Fatalf("after insert: %d  error: %s", i, err)
		}
	}
	assert.Equal(t, 3, tree.Height(), "wrong final height")
	assert.Equal(t, 7, tree.Count(), "wrong count")
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, slices.Collect(tree.Enumerate()))

	var b bytes.Buffer
	tree.PrintLevels(&b)
	expected := "   4   \n" +
		" 2   6 \n" +
		"1 3 5 7\n"
	assert.Equal(t, expected, b.String(), "wrong shape")
}

func TestDoubleRotations(t *testing.T) {
	// left-right
	tree := avl.NewOrdered[int]()
	for _, k := range []int{30, 10, 20} {
		tree.Insert(k)
	}
	var b bytes.Buffer
	tree.PrintLevels(&b)
	assert.Equal(t, " 20 \n10 30\n", b.String(), "left-right case")

	// right-left
	tree = avl.NewOrdered[int]()
	for _, k := range []int{10, 30, 20} {
		tree.Insert(k)
	}
	b.Reset()
	tree.PrintLevels(&b)
	assert.Equal(t, " 20 \n10 30\n", b.String(), "right-left case")
}

// deleting from the short side of a tree can rebalance more than one
// ancestor
func TestDeleteCascade(t *testing.T) {
	tree := avl.NewOrdered[int]()
	for _, k := range []int{8, 5, 11, 3, 7, 10, 12, 2, 4, 6, 9, 1} {
		tree.Insert(k)
	}
	assert.Nil(t, tree.Check())
	assert.Equal(t, 5, tree.Height())

	assert.True(t, tree.Delete(12))
	assert.Nil(t, tree.Check())
	assert.True(t, tree.Delete(9))
	assert.Nil(t, tree.Check())
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 10, 11}, slices.Collect(tree.Enumerate()))
	assert.LessOrEqual(t, tree.Height(), 4)
}

func TestEmpty(t *testing.T) {
	tree := avl.NewOrdered[int]()
	assert.False(t, tree.Delete(1), "delete from empty tree")
	assert.Equal(t, 0, tree.Count())
	assert.False(t, tree.Contains(1))
	assert.Equal(t, 0, tree.Height())
	assert.Nil(t, tree.Check())

	tree.Insert(1)
	assert.True(t, tree.Delete(1))
	assert.True(t, tree.IsEmpty())
	assert.Nil(t, tree.Check())
}

func TestIdempotentInsert(t *testing.T) {
	tree := avl.NewOrdered[int]()
	for _, k := range []int{5, 3, 8, 1, 4} {
		tree.Insert(k)
	}
	var before bytes.Buffer
	tree.Print(&before, true)

	assert.False(t, tree.Insert(4), "duplicate insert reported a change")
	var after bytes.Buffer
	tree.Print(&after, true)

	assert.Equal(t, before.String(), after.String(), "duplicate insert changed the tree")
	assert.Equal(t, 5, tree.Count())
}

func TestRoundTrip(t *testing.T) {
	tree := avl.NewOrdered[int]()
	for _, k := range []int{50, 20, 70, 10, 30, 60, 80} {
		tree.Insert(k)
	}
	before := slices.Collect(tree.Enumerate())
	assert.True(t, tree.Insert(25))
	assert.True(t, tree.Delete(25))
	assert.Equal(t, before, slices.Collect(tree.Enumerate()))
	assert.Nil(t, tree.Check())
}

func TestCustomOrder(t *testing.T) {
	tree := avl.New(func(a, b int) int { return b - a })
	for _, k := range []int{1, 5, 3, 2, 4} {
		tree.Insert(k)
	}
	assert.Equal(t, []int{5, 4, 3, 2, 1}, slices.Collect(tree.Enumerate()))
	assert.Nil(t, tree.Check())

	tree.Clear()
	assert.True(t, tree.IsEmpty())
}

// random inserts and deletes checked against a map after every step
func TestRandomOperations(t *testing.T) {
	r := rand.New(rand.NewPCG(2014, 2020))
	tree := avl.NewOrdered[int]()
	model := make(map[int]struct{})

	for i := 0; i < 5000; i += 1 {
		k := r.IntN(500)
		if r.IntN(3) == 0 {
			_, present := model[k]
			assert.Equal(t, present, tree.Delete(k), "delete: %d", k)
			delete(model, k)
		} else {
			_, present := model[k]
			assert.Equal(t, !present, tree.Insert(k), "insert: %d", k)
			model[k] = struct{}{}
		}
		if err := tree.Check(); nil != err {
			t.Fatalf("step: %d  key: %d  error: %s", i, k, err)
		}
		if len(model) != tree.Count() {
			t.Fatalf("step: %d  count: %d  expected: %d", i, tree.Count(), len(model))
		}
	}

	for k := 0; k < 500; k += 1 {
		_, present := model[k]
		assert.Equal(t, present, tree.Contains(k), "contains: %d", k)
	}
}
