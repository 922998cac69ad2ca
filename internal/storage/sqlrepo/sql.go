package sqlrepo

// -----------------------------------------------------------------------------
// SCHEMA
// -----------------------------------------------------------------------------

// SQLite keeps dates as TEXT so they scan back as YYYY-MM-DD strings. Foreign
// keys are declared but not enforced (foreign_keys pragma stays off).
var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS hotels (
  id       TEXT PRIMARY KEY,
  name     TEXT NOT NULL,
  location TEXT,
  stars    INTEGER
)`,
	`CREATE TABLE IF NOT EXISTS rooms (
  id        TEXT PRIMARY KEY,
  hotel_id  TEXT NOT NULL,
  room_type TEXT,
  price     REAL,
  status    TEXT,
  FOREIGN KEY(hotel_id) REFERENCES hotels(id)
)`,
	`CREATE TABLE IF NOT EXISTS guests (
  id    TEXT PRIMARY KEY,
  name  TEXT,
  phone TEXT,
  email TEXT
)`,
	`CREATE TABLE IF NOT EXISTS bookings (
  id        TEXT PRIMARY KEY,
  guest_id  TEXT,
  room_id   TEXT,
  hotel_id  TEXT,
  check_in  TEXT,
  check_out TEXT,
  FOREIGN KEY(guest_id) REFERENCES guests(id),
  FOREIGN KEY(room_id) REFERENCES rooms(id),
  FOREIGN KEY(hotel_id) REFERENCES hotels(id)
)`,
	`CREATE TABLE IF NOT EXISTS payments (
  id         TEXT PRIMARY KEY,
  booking_id TEXT,
  amount     REAL,
  method     TEXT,
  FOREIGN KEY(booking_id) REFERENCES bookings(id)
)`,
}

// InnoDB enforces FOREIGN KEY constraints, so MySQL only gets lookup indexes:
// deletes never cascade and never block on dependents.
var mysqlSchema = []string{
	`CREATE TABLE IF NOT EXISTS hotels (
  id       VARCHAR(36)  NOT NULL PRIMARY KEY,
  name     VARCHAR(255) NOT NULL,
  location VARCHAR(255),
  stars    INT
)`,
	`CREATE TABLE IF NOT EXISTS rooms (
  id        VARCHAR(36) NOT NULL PRIMARY KEY,
  hotel_id  VARCHAR(36) NOT NULL,
  room_type VARCHAR(64),
  price     DOUBLE,
  status    VARCHAR(32),
  INDEX idx_rooms_hotel (hotel_id),
  INDEX idx_rooms_status (status)
)`,
	`CREATE TABLE IF NOT EXISTS guests (
  id    VARCHAR(36) NOT NULL PRIMARY KEY,
  name  VARCHAR(255),
  phone VARCHAR(64),
  email VARCHAR(255)
)`,
	`CREATE TABLE IF NOT EXISTS bookings (
  id        VARCHAR(36) NOT NULL PRIMARY KEY,
  guest_id  VARCHAR(36),
  room_id   VARCHAR(36),
  hotel_id  VARCHAR(36),
  check_in  DATE,
  check_out DATE,
  INDEX idx_bookings_guest (guest_id),
  INDEX idx_bookings_hotel (hotel_id)
)`,
	`CREATE TABLE IF NOT EXISTS payments (
  id         VARCHAR(36) NOT NULL PRIMARY KEY,
  booking_id VARCHAR(36),
  amount     DOUBLE,
  method     VARCHAR(64),
  INDEX idx_payments_booking (booking_id)
)`,
}

// -----------------------------------------------------------------------------
// ANALYTICS QUERIES
// -----------------------------------------------------------------------------

// Ties on stars fall back to whatever order the engine returns.
const highestRatedHotelSQL = `
SELECT id, name, location, stars
FROM hotels
ORDER BY stars DESC
LIMIT 1
`

// LEFT JOIN so guests without bookings still count (as 0).
const topGuestSQL = `
SELECT g.id, g.name, COUNT(b.id) AS total_bookings
FROM guests g
LEFT JOIN bookings b ON g.id = b.guest_id
GROUP BY g.id, g.name
ORDER BY total_bookings DESC
LIMIT 1
`

// Day difference is calendar based on both engines.
const sqliteAverageStaySQL = `
SELECT AVG(julianday(check_out) - julianday(check_in)) AS avg_stay
FROM bookings
`

const mysqlAverageStaySQL = `
SELECT AVG(DATEDIFF(check_out, check_in)) AS avg_stay
FROM bookings
`

// Params: guest id, today (YYYY-MM-DD). An active stay ranks 0, everything
// else 1; inside a rank the latest check_out wins.
const currentOrLastHotelSQL = `
SELECT h.id, h.name, h.location, h.stars
FROM bookings b
JOIN hotels h ON b.hotel_id = h.id
WHERE b.guest_id = ?
ORDER BY
  CASE WHEN ? BETWEEN b.check_in AND b.check_out THEN 0 ELSE 1 END,
  b.check_out DESC
LIMIT 1
`

const totalPaidPerBookingSQL = `
SELECT booking_id, SUM(amount) AS total_paid
FROM payments
WHERE booking_id IS NOT NULL
GROUP BY booking_id
ORDER BY booking_id
`

const availableRoomCountSQL = `
SELECT COUNT(*) FROM rooms WHERE status = ?
`
