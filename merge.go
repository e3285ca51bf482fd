// Copyright 2025 Canonical Ltd.
// Licensed under the LGPLv3, see LICENCE file for details.

package initconfig

import (
	"reflect"

	"github.com/juju/errors"
)

// Merge combines two optional document fragments into one. A nil
// fragment is the identity on either side. For keys present in
// source:
//   - list values merge with set semantics: the result is the union
//     of both sides with duplicates removed, and colliding with a
//     non-list value already at that key is a merge conflict;
//   - map values merge recursively;
//   - scalar values overwrite whatever is there.
//
// Neither input is mutated, so fragments emitted by elements can be
// merged repeatedly. Merge is left-foldable over an ordered sequence
// of fragments with a nil accumulator.
func Merge(target, source map[string]interface{}) (map[string]interface{}, error) {
	if source == nil {
		return target, nil
	}
	merged := make(map[string]interface{}, len(target)+len(source))
	for key, value := range target {
		merged[key] = value
	}
	for key, value := range source {
		switch value := value.(type) {
		case []interface{}:
			existing, ok := merged[key]
			if !ok {
				merged[key] = mergeLists(nil, value)
				continue
			}
			existingList, ok := existing.([]interface{})
			if !ok {
				return nil, errors.NotValidf("merging list with %T at key %q", existing, key)
			}
			merged[key] = mergeLists(existingList, value)
		case map[string]interface{}:
			nested, _ := merged[key].(map[string]interface{})
			mergedNested, err := Merge(nested, value)
			if err != nil {
				return nil, errors.Annotatef(err, "key %q", key)
			}
			merged[key] = mergedNested
		case nil:
		default:
			merged[key] = value
		}
	}
	return merged, nil
}

// mergeLists returns the union of both lists with duplicates removed.
// First-seen order is what the fold happens to produce; callers must
// not rely on it, only on set equality.
func mergeLists(target, source []interface{}) []interface{} {
	union := make([]interface{}, 0, len(target)+len(source))
	for _, list := range [][]interface{}{target, source} {
		for _, value := range list {
			if !containsValue(union, value) {
				union = append(union, value)
			}
		}
	}
	return union
}

func containsValue(list []interface{}, value interface{}) bool {
	for _, member := range list {
		if reflect.DeepEqual(member, value) {
			return true
		}
	}
	return false
}
