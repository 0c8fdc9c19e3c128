/* Copyright © 2026 The MeetMission Authors. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package internal

const (
	UserAgent      = "meet-mission-scheduler/0.3.0 (+https://github.com/Zopsss/meet-mission-sub000)"
	APIBaseURL     = "https://api.meetmission.app"
	WebBaseURL     = "https://meetmission.app"
	WebCacheBucket = "meet-mission-prod-webcache"
)
