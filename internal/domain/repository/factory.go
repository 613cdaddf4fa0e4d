package repository

// Factory describes access to different domain repositories.
type Factory interface {
	Profiles() ProfileRepository
	Points() PointsRepository
	Payouts() PayoutRepository
	Follows() FollowRepository
	Messages() MessageRepository
	Content() ContentRepository
	Notifications() NotificationRepository
}
