// Copyright 2025 Canonical Ltd.
// Licensed under the LGPLv3, see LICENCE file for details.

package initconfig_test

import (
	"github.com/juju/errors"
	jujutesting "github.com/juju/testing"
	jc "github.com/juju/testing/checkers"
	gc "gopkg.in/check.v1"

	"github.com/juju/initconfig"
)

type MergeSuite struct {
	jujutesting.IsolationSuite
}

var _ = gc.Suite(&MergeSuite{})

func (s *MergeSuite) TestNilIsIdentity(c *gc.C) {
	fragment := map[string]interface{}{"a": "b"}

	merged, err := initconfig.Merge(nil, fragment)
	c.Assert(err, jc.ErrorIsNil)
	c.Assert(merged, jc.DeepEquals, fragment)

	merged, err = initconfig.Merge(fragment, nil)
	c.Assert(err, jc.ErrorIsNil)
	c.Assert(merged, jc.DeepEquals, fragment)

	merged, err = initconfig.Merge(nil, nil)
	c.Assert(err, jc.ErrorIsNil)
	c.Assert(merged, gc.IsNil)
}

func (s *MergeSuite) TestScalarOverwrites(c *gc.C) {
	merged, err := initconfig.Merge(
		map[string]interface{}{"mode": "000644", "owner": "root"},
		map[string]interface{}{"mode": "000755"},
	)
	c.Assert(err, jc.ErrorIsNil)
	c.Assert(merged, jc.DeepEquals, map[string]interface{}{
		"mode":  "000755",
		"owner": "root",
	})
}

func (s *MergeSuite) TestNilSourceValueIgnored(c *gc.C) {
	merged, err := initconfig.Merge(
		map[string]interface{}{"owner": "root"},
		map[string]interface{}{"owner": nil},
	)
	c.Assert(err, jc.ErrorIsNil)
	c.Assert(merged, jc.DeepEquals, map[string]interface{}{"owner": "root"})
}

func (s *MergeSuite) TestListsMergeAsSets(c *gc.C) {
	merged, err := initconfig.Merge(
		map[string]interface{}{"groups": []interface{}{"wheel", "docker"}},
		map[string]interface{}{"groups": []interface{}{"docker", "lxd"}},
	)
	c.Assert(err, jc.ErrorIsNil)
	groups, ok := merged["groups"].([]interface{})
	c.Assert(ok, jc.IsTrue)
	c.Assert(groups, jc.SameContents, []interface{}{"wheel", "docker", "lxd"})
}

func (s *MergeSuite) TestListOverNonListConflicts(c *gc.C) {
	_, err := initconfig.Merge(
		map[string]interface{}{"groups": "wheel"},
		map[string]interface{}{"groups": []interface{}{"docker"}},
	)
	c.Assert(err, jc.Satisfies, errors.IsNotValid)
	c.Assert(err, gc.ErrorMatches, `merging list with string at key "groups" not valid`)
}

func (s *MergeSuite) TestNestedConflictNamesPath(c *gc.C) {
	_, err := initconfig.Merge(
		map[string]interface{}{"apt": map[string]interface{}{"curl": "latest"}},
		map[string]interface{}{"apt": map[string]interface{}{"curl": []interface{}{}}},
	)
	c.Assert(err, jc.Satisfies, errors.IsNotValid)
	c.Assert(err, gc.ErrorMatches, `key "apt": merging list with string at key "curl" not valid`)
}

func (s *MergeSuite) TestMapsMergeRecursively(c *gc.C) {
	merged, err := initconfig.Merge(
		map[string]interface{}{
			"apt": map[string]interface{}{"curl": []interface{}{}},
		},
		map[string]interface{}{
			"apt": map[string]interface{}{"jq": []interface{}{"1.6"}},
			"yum": map[string]interface{}{"httpd": []interface{}{}},
		},
	)
	c.Assert(err, jc.ErrorIsNil)
	c.Assert(merged, jc.DeepEquals, map[string]interface{}{
		"apt": map[string]interface{}{
			"curl": []interface{}{},
			"jq":   []interface{}{"1.6"},
		},
		"yum": map[string]interface{}{"httpd": []interface{}{}},
	})
}

func (s *MergeSuite) TestInputsNotMutated(c *gc.C) {
	target := map[string]interface{}{
		"apt": map[string]interface{}{"curl": []interface{}{}},
	}
	source := map[string]interface{}{
		"apt": map[string]interface{}{"jq": []interface{}{}},
	}
	_, err := initconfig.Merge(target, source)
	c.Assert(err, jc.ErrorIsNil)
	c.Assert(target, jc.DeepEquals, map[string]interface{}{
		"apt": map[string]interface{}{"curl": []interface{}{}},
	})
	c.Assert(source, jc.DeepEquals, map[string]interface{}{
		"apt": map[string]interface{}{"jq": []interface{}{}},
	})
}
