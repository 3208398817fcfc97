/*
   Copyright 2025 The s33r Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package catalog resolves error-record codes into human-readable
// messages.
//
// Record codes are lookup keys: some normalizers (parse errors in
// particular) cannot recover a message from their input and deliberately
// leave resolution to an external table. Catalog is that table as a
// first-class component — an immutable snapshot built once from options
// and queried forever, with three resolution tiers: per-code
// source-prefix rules (longest match, "*" wildcard for one segment),
// per-code defaults, and a catalog-wide fallback.
//
// Nothing in the core invokes a Catalog implicitly; translation is always
// an explicit call, so the untranslated record stays available.
package catalog
