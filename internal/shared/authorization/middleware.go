package authorization

import (
	"github.com/gin-gonic/gin"
)

// RequireAdmin gates routes reserved for portal admins, such as agent
// approval, penalty overviews and the manual compliance triggers. It expects
// the auth middleware to have stored the role under "user_role".
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole := c.GetString("user_role")
		if userRole != string(RoleAdmin) {
			c.JSON(403, gin.H{
				"error": "admin access required",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// OwnedResource is anything scoped to a single employee, e.g. a task is
// owned by its assignee.
type OwnedResource interface {
	GetOwnerID() uint
}

// CanAccessResource reports whether the user may read or act on the
// resource. Admins see everything, employees only what is theirs.
func CanAccessResource(userID uint, userRole UserRole, resource OwnedResource) bool {
	if userRole.IsAdmin() {
		return true
	}
	return userID == resource.GetOwnerID()
}

// CanAccessResourceByOwnerID is CanAccessResource for call sites that only
// have the owner's ID at hand.
func CanAccessResourceByOwnerID(userID uint, userRole UserRole, resourceOwnerID uint) bool {
	if userRole.IsAdmin() {
		return true
	}
	return userID == resourceOwnerID
}
