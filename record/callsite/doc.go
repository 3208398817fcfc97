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

// Package callsite captures a best-effort textual call-site trace, used as
// the default "location" of a newly constructed error record.
//
// Raw stack formats are not portable, so the trace is a deliberately small
// "file:line" rendering rather than a full runtime stack dump. Capture
// never fails; when no frame information is available it yields "".
package callsite
