// Copyright 2026 The ngxconf Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package directives

import (
	"testing"

	"github.com/ngxkit/ngxconf/ngxconf"
)

func TestRegisterDefaultsPopulatesCatalog(t *testing.T) {
	cat := ngxconf.NewCatalog()
	RegisterDefaults(cat)

	for _, name := range []string{"events", "http", "server", "location", "listen", "proxy_pass", "include", "upstream"} {
		if !cat.Has(name) {
			t.Errorf("expected catalog to have an entry for %q", name)
		}
	}
}

func TestLocationAcceptsServerAndLocationContexts(t *testing.T) {
	cat := ngxconf.NewCatalog()
	RegisterDefaults(cat)

	masks, ok := cat.Lookup("location")
	if !ok {
		t.Fatal("expected location to be registered")
	}

	var sawServer, sawLocation bool
	for _, m := range masks {
		if m&ngxconf.HTTP_SRV != 0 {
			sawServer = true
		}
		if m&ngxconf.HTTP_LOC != 0 {
			sawLocation = true
		}
	}
	if !sawServer || !sawLocation {
		t.Errorf("expected location to be valid in both server and nested-location contexts, got %v", masks)
	}
}

func TestIncludeCoversEveryMainContext(t *testing.T) {
	cat := ngxconf.NewCatalog()
	RegisterDefaults(cat)

	masks, ok := cat.Lookup("include")
	if !ok {
		t.Fatal("expected include to be registered")
	}
	want := []ngxconf.Mask{
		ngxconf.MAIN, ngxconf.EVENTS, ngxconf.HTTP_MAIN, ngxconf.HTTP_SRV,
		ngxconf.HTTP_LOC, ngxconf.HTTP_UPS, ngxconf.STREAM_MAIN, ngxconf.STREAM_SRV,
		ngxconf.MAIL_MAIN, ngxconf.MAIL_SRV,
	}
	for _, ctxBit := range want {
		var found bool
		for _, m := range masks {
			if m&ctxBit != 0 {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("expected include to be valid in context bit %d", ctxBit)
		}
	}
}
