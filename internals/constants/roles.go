package constants

// Tipe user pada sistem informasi sekolah
const (
	RoleAdmin   = "admin"
	RoleTeacher = "teacher"
	RoleStaff   = "staff"
	RoleStudent = "student"
)

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	// Staf tata usaha & waka ikut grup admin untuk data master
	AdminAndStaff = []string{
		RoleAdmin,
		RoleStaff,
	}

	TeacherAndAdmin = []string{
		RoleTeacher,
		RoleAdmin,
	}

	StudentOnly = []string{
		RoleStudent,
	}
)

const ErrForbidden = "Anda tidak memiliki akses ke fitur ini."
