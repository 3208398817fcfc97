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

// Package normalize maps heterogeneous external error shapes — recovered
// values, HTTP responses, validator issues, structured parse errors,
// plain strings — into the single normalized record.Record shape.
//
// Every factory shares one contract: it is pure, it never fails, it
// always returns a valid Record, and record options supplied by the
// caller (most commonly record.WithSource) override anything derived
// from the input.
package normalize
