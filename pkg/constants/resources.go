package constants

// Blackboard resource type strings as they appear in the manifest resource table.
const (
	ResTypeGradebook     = "course/x-bb-gradebook"
	ResTypeCourseSetting = "course/x-bb-coursesetting"
	ResTypeAnnouncement  = "resource/x-bb-announcement"
	ResTypeRubrics       = "course/x-bb-rubrics"
)

const (
	// CONTENTHANDLER values carry this prefix before the handler name.
	ContentHandlerPrefix = "resource/x-bb-"

	// The announcement tool is matched by this literal title combined with
	// kind "Application". Default Blackboard naming; a renamed tool is missed.
	AnnouncementsTitle = "Announcements"
)
