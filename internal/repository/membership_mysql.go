package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/mahlalem-eng/themosthigh-backend/internal/entity"
)

type MySQLMembershipRepository struct {
	db *sql.DB
}

func NewMySQLMembershipRepository(db *sql.DB) *MySQLMembershipRepository {
	return &MySQLMembershipRepository{db}
}

const applicationColumns = `id, first_name, last_name, email, phone, date_of_birth, id_number,
	address, emergency_contact, emergency_phone, medical_conditions, preferred_products,
	id_document_url, profile_picture_url, status, created_at, updated_at, reviewed_at,
	reviewed_by, notes, member_number, membership_tier, member_since, expiry_date,
	qr_code_data, card_generated`

func scanApplication(row interface{ Scan(...any) error }) (*entity.MembershipApplication, error) {
	app := &entity.MembershipApplication{}
	var address, emergencyContact, emergencyPhone, medical, idDoc, profilePic,
		reviewedBy, notes, memberNumber, tier, qrCode sql.NullString
	var reviewedAt, memberSince, expiryDate sql.NullTime
	var preferred []byte

	err := row.Scan(&app.ID, &app.FirstName, &app.LastName, &app.Email, &app.Phone,
		&app.DateOfBirth, &app.IDNumber, &address, &emergencyContact, &emergencyPhone,
		&medical, &preferred, &idDoc, &profilePic, &app.Status, &app.CreatedAt,
		&app.UpdatedAt, &reviewedAt, &reviewedBy, &notes, &memberNumber, &tier,
		&memberSince, &expiryDate, &qrCode, &app.CardGenerated)
	if err != nil {
		return nil, err
	}

	app.Address = address.String
	app.EmergencyContact = emergencyContact.String
	app.EmergencyPhone = emergencyPhone.String
	app.MedicalConditions = medical.String
	app.IDDocumentURL = idDoc.String
	app.ProfilePictureURL = profilePic.String
	app.ReviewedBy = reviewedBy.String
	app.Notes = notes.String
	app.MemberNumber = memberNumber.String
	app.MembershipTier = tier.String
	app.QRCodeData = qrCode.String
	if reviewedAt.Valid {
		app.ReviewedAt = &reviewedAt.Time
	}
	if memberSince.Valid {
		app.MemberSince = &memberSince.Time
	}
	if expiryDate.Valid {
		app.ExpiryDate = &expiryDate.Time
	}
	if len(preferred) > 0 {
		if err := json.Unmarshal(preferred, &app.PreferredProducts); err != nil {
			return nil, err
		}
	}
	return app, nil
}

func (r *MySQLMembershipRepository) Create(ctx context.Context, app *entity.MembershipApplication) error {
	preferred, err := json.Marshal(app.PreferredProducts)
	if err != nil {
		return err
	}
	query := `INSERT INTO membership_applications
		(id, first_name, last_name, email, phone, date_of_birth, id_number, address,
		emergency_contact, emergency_phone, medical_conditions, preferred_products,
		id_document_url, profile_picture_url, status, created_at, updated_at, card_generated)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query, app.ID, app.FirstName, app.LastName, app.Email,
		app.Phone, app.DateOfBirth, app.IDNumber, app.Address, app.EmergencyContact,
		app.EmergencyPhone, app.MedicalConditions, preferred, app.IDDocumentURL,
		app.ProfilePictureURL, app.Status, app.CreatedAt, app.UpdatedAt, app.CardGenerated)
	return err
}

func (r *MySQLMembershipRepository) GetAll(ctx context.Context) ([]*entity.MembershipApplication, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+applicationColumns+` FROM membership_applications`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var apps []*entity.MembershipApplication
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		apps = append(apps, app)
	}
	return apps, rows.Err()
}

func (r *MySQLMembershipRepository) GetByID(ctx context.Context, id string) (*entity.MembershipApplication, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+applicationColumns+` FROM membership_applications WHERE id = ?`, id)
	app, err := scanApplication(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrApplicationNotFound
	}
	if err != nil {
		return nil, err
	}
	return app, nil
}

func (r *MySQLMembershipRepository) Update(ctx context.Context, app *entity.MembershipApplication) error {
	preferred, err := json.Marshal(app.PreferredProducts)
	if err != nil {
		return err
	}
	query := `UPDATE membership_applications SET first_name = ?, last_name = ?, email = ?,
		phone = ?, date_of_birth = ?, id_number = ?, address = ?, emergency_contact = ?,
		emergency_phone = ?, medical_conditions = ?, preferred_products = ?,
		id_document_url = ?, profile_picture_url = ?, status = ?, updated_at = ?,
		reviewed_at = ?, reviewed_by = ?, notes = ?, member_number = ?,
		membership_tier = ?, member_since = ?, expiry_date = ?, qr_code_data = ?,
		card_generated = ? WHERE id = ?`
	_, err = r.db.ExecContext(ctx, query, app.FirstName, app.LastName, app.Email,
		app.Phone, app.DateOfBirth, app.IDNumber, app.Address, app.EmergencyContact,
		app.EmergencyPhone, app.MedicalConditions, preferred, app.IDDocumentURL,
		app.ProfilePictureURL, app.Status, app.UpdatedAt, app.ReviewedAt, app.ReviewedBy,
		app.Notes, app.MemberNumber, app.MembershipTier, app.MemberSince, app.ExpiryDate,
		app.QRCodeData, app.CardGenerated, app.ID)
	return err
}

func (r *MySQLMembershipRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM membership_applications WHERE id = ?`, id)
	return err
}

func (r *MySQLMembershipRepository) FindApproved(ctx context.Context, memberNumber, email string) (*entity.MembershipApplication, error) {
	query := `SELECT ` + applicationColumns + ` FROM membership_applications
		WHERE status = ? AND (member_number = ? OR LOWER(email) = ?) LIMIT 1`
	row := r.db.QueryRowContext(ctx, query, entity.ApplicationStatusApproved, memberNumber, email)
	app, err := scanApplication(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrApplicationNotFound
	}
	if err != nil {
		return nil, err
	}
	return app, nil
}

// NextMemberSequence allocates the next member number for the year inside a
// transaction with a row lock, so concurrent approvals cannot collide.
func (r *MySQLMembershipRepository) NextMemberSequence(ctx context.Context, year int) (int, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO member_sequences (year, counter) VALUES (?, 0)
		ON DUPLICATE KEY UPDATE year = year`, year)
	if err != nil {
		tx.Rollback()
		return 0, err
	}

	var counter int
	err = tx.QueryRowContext(ctx,
		`SELECT counter FROM member_sequences WHERE year = ? FOR UPDATE`, year).Scan(&counter)
	if err != nil {
		tx.Rollback()
		return 0, err
	}

	counter++
	_, err = tx.ExecContext(ctx,
		`UPDATE member_sequences SET counter = ? WHERE year = ?`, counter, year)
	if err != nil {
		tx.Rollback()
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return counter, nil
}
