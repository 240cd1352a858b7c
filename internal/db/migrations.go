package db

import (
	"fmt"

	"gorm.io/gorm"
)

var migrationStatements = []string{
	`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	`CREATE EXTENSION IF NOT EXISTS "pgcrypto";`,
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		username VARCHAR(150) NOT NULL UNIQUE,
		email VARCHAR(254) NOT NULL UNIQUE,
		role VARCHAR(32) NOT NULL DEFAULT 'PROVINCE_MANAGER',
		province VARCHAR(50),
		phone_number VARCHAR(15),
		first_name VARCHAR(100),
		last_name VARCHAR(100),
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS expert_provinces (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		expert_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		province VARCHAR(50) NOT NULL,
		UNIQUE (expert_id, province)
	);`,
	`CREATE TABLE IF NOT EXISTS programs (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		program_id VARCHAR(6) NOT NULL,
		title VARCHAR(255) NOT NULL,
		program_type VARCHAR(64) NOT NULL,
		province VARCHAR(50) NOT NULL,
		city VARCHAR(50) NOT NULL DEFAULT '',
		license_state VARCHAR(32) NOT NULL,
		license_code VARCHAR(25) NOT NULL DEFAULT '',
		address TEXT,
		longitude NUMERIC(9,6),
		latitude NUMERIC(9,6),
		description TEXT,
		opening_date DATE,
		overall_physical_progress NUMERIC(5,2) NOT NULL DEFAULT 0,
		is_submitted BOOLEAN NOT NULL DEFAULT FALSE,
		is_expert_approved BOOLEAN NOT NULL DEFAULT FALSE,
		is_approved BOOLEAN NOT NULL DEFAULT FALSE,
		created_by_id UUID NOT NULL REFERENCES users(id),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_programs_program_id ON programs (program_id);`,
	`CREATE TABLE IF NOT EXISTS projects (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		program_id UUID REFERENCES programs(id) ON DELETE CASCADE,
		project_id VARCHAR(6) NOT NULL,
		name VARCHAR(255) NOT NULL,
		project_type VARCHAR(64) NOT NULL,
		province VARCHAR(50) NOT NULL,
		city VARCHAR(50) NOT NULL DEFAULT '',
		area_size NUMERIC(10,2),
		site_area NUMERIC(10,2),
		wall_length NUMERIC(10,2),
		notables NUMERIC(10,2),
		floor INTEGER,
		estimated_opening_time DATE,
		overall_status VARCHAR(16) NOT NULL DEFAULT 'inactive',
		physical_progress NUMERIC(5,2) NOT NULL DEFAULT 0,
		cash_national NUMERIC(15,0) NOT NULL DEFAULT 0,
		cash_province NUMERIC(15,0) NOT NULL DEFAULT 0,
		cash_charity NUMERIC(15,0) NOT NULL DEFAULT 0,
		cash_travel NUMERIC(15,0) NOT NULL DEFAULT 0,
		treasury_national NUMERIC(15,0) NOT NULL DEFAULT 0,
		treasury_province NUMERIC(15,0) NOT NULL DEFAULT 0,
		treasury_travel NUMERIC(15,0) NOT NULL DEFAULT 0,
		cached_total_debt NUMERIC(15,2) NOT NULL DEFAULT 0,
		cached_required_credit_contracts NUMERIC(15,2) NOT NULL DEFAULT 0,
		cached_required_credit_project NUMERIC(15,2) NOT NULL DEFAULT 0,
		is_submitted BOOLEAN NOT NULL DEFAULT FALSE,
		is_expert_approved BOOLEAN NOT NULL DEFAULT FALSE,
		is_approved BOOLEAN NOT NULL DEFAULT FALSE,
		created_by_id UUID NOT NULL REFERENCES users(id),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_projects_project_id ON projects (project_id);`,
	`CREATE INDEX IF NOT EXISTS idx_projects_program ON projects (program_id);`,
	`CREATE TABLE IF NOT EXISTS subprojects (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		project_id UUID NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		number SMALLINT NOT NULL,
		name VARCHAR(255),
		type VARCHAR(64) NOT NULL,
		state VARCHAR(64) NOT NULL,
		physical_progress NUMERIC(5,2) NOT NULL DEFAULT 0,
		remaining_work TEXT,
		description TEXT,
		supporting_charity BOOLEAN NOT NULL DEFAULT FALSE,
		related_sub_project_id UUID REFERENCES subprojects(id) ON DELETE SET NULL,
		relationship_type VARCHAR(16),
		relationship_delay INTEGER,
		imaginary_duration INTEGER,
		imaginary_cost NUMERIC(15,2),
		cost_calculation_method TEXT,
		has_adjustment BOOLEAN NOT NULL DEFAULT FALSE,
		adjustment_coefficient NUMERIC(10,4) NOT NULL DEFAULT 0,
		predicted_adjustment_amount NUMERIC(15,2) NOT NULL DEFAULT 0,
		contract_start_date DATE,
		contract_end_date DATE,
		contract_amount NUMERIC(15,2),
		contract_type VARCHAR(32),
		execution_method VARCHAR(64),
		contractor_name VARCHAR(255),
		contractor_id VARCHAR(50),
		start_date DATE,
		end_date DATE,
		total_payments NUMERIC(15,2) NOT NULL DEFAULT 0,
		total_adjustment_amount NUMERIC(15,2) NOT NULL DEFAULT 0,
		debt NUMERIC(15,2) NOT NULL DEFAULT 0,
		is_submitted BOOLEAN NOT NULL DEFAULT FALSE,
		is_expert_approved BOOLEAN NOT NULL DEFAULT FALSE,
		is_approved BOOLEAN NOT NULL DEFAULT FALSE,
		created_by_id UUID NOT NULL REFERENCES users(id),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_subprojects_project_number ON subprojects (project_id, number);`,
	`CREATE INDEX IF NOT EXISTS idx_subprojects_related ON subprojects (related_sub_project_id) WHERE related_sub_project_id IS NOT NULL;`,
	`CREATE TABLE IF NOT EXISTS financial_documents (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		sub_project_id UUID NOT NULL REFERENCES subprojects(id) ON DELETE CASCADE,
		document_type VARCHAR(20) NOT NULL,
		document_number INTEGER NOT NULL,
		related_document_id UUID REFERENCES financial_documents(id) ON DELETE SET NULL,
		contractor_amount NUMERIC(14,0) NOT NULL,
		approved_amount NUMERIC(14,0) NOT NULL,
		contractor_submit_date DATE NOT NULL,
		approval_date DATE,
		description TEXT,
		created_by_id UUID REFERENCES users(id),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_financial_documents_number
		ON financial_documents (sub_project_id, document_type, document_number);`,
	`CREATE TABLE IF NOT EXISTS document_files (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		document_id UUID NOT NULL REFERENCES financial_documents(id) ON DELETE CASCADE,
		content BYTEA NOT NULL,
		mime_type VARCHAR(100) NOT NULL DEFAULT 'application/octet-stream',
		filename VARCHAR(255) NOT NULL,
		uploaded_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS payments (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		sub_project_id UUID NOT NULL REFERENCES subprojects(id) ON DELETE CASCADE,
		amount NUMERIC(14,0) NOT NULL,
		related_document_id UUID REFERENCES financial_documents(id) ON DELETE SET NULL,
		payment_date DATE NOT NULL,
		description TEXT,
		created_by_id UUID REFERENCES users(id),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_payments_subproject ON payments (sub_project_id);`,
	`CREATE TABLE IF NOT EXISTS situation_reports (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		sub_project_id UUID NOT NULL REFERENCES subprojects(id) ON DELETE CASCADE,
		report_number INTEGER NOT NULL,
		report_type VARCHAR(16) NOT NULL,
		report_date DATE NOT NULL,
		payment_amount NUMERIC(15,0) NOT NULL,
		description TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_situation_reports_subproject ON situation_reports (sub_project_id, report_number);`,
	`CREATE TABLE IF NOT EXISTS gallery_images (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		sub_project_id UUID NOT NULL REFERENCES subprojects(id) ON DELETE CASCADE,
		content BYTEA NOT NULL,
		mime_type VARCHAR(100) NOT NULL DEFAULT 'image/jpeg',
		title VARCHAR(255),
		description TEXT,
		uploaded_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS funding_requests (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		project_id UUID NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		created_by_id UUID NOT NULL REFERENCES users(id),
		expert_id UUID REFERENCES users(id),
		chief_id UUID REFERENCES users(id),
		province_suggested_amount NUMERIC(15,0) NOT NULL,
		headquarters_suggested_amount NUMERIC(15,0),
		final_amount NUMERIC(15,0),
		priority VARCHAR(16) NOT NULL,
		province_description TEXT NOT NULL DEFAULT '',
		expert_description TEXT NOT NULL DEFAULT '',
		expert_rejection_reason TEXT NOT NULL DEFAULT '',
		chief_rejection_reason TEXT NOT NULL DEFAULT '',
		status VARCHAR(32) NOT NULL DEFAULT 'draft',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		submitted_at TIMESTAMPTZ,
		approved_at TIMESTAMPTZ,
		archived_at TIMESTAMPTZ
	);`,
	`CREATE INDEX IF NOT EXISTS idx_funding_requests_project ON funding_requests (project_id);`,
	`CREATE INDEX IF NOT EXISTS idx_funding_requests_status ON funding_requests (status);`,
	`CREATE TABLE IF NOT EXISTS change_entries (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		entity_kind VARCHAR(16) NOT NULL,
		entity_id UUID NOT NULL,
		field_name VARCHAR(64) NOT NULL,
		old_value TEXT NOT NULL DEFAULT '',
		new_value TEXT NOT NULL DEFAULT '',
		changed_by_id UUID NOT NULL REFERENCES users(id),
		changed_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_change_entries_entity ON change_entries (entity_kind, entity_id, changed_at);`,
	`CREATE TABLE IF NOT EXISTS rejection_comments (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		entity_kind VARCHAR(16) NOT NULL,
		entity_id UUID NOT NULL,
		field_name VARCHAR(100) NOT NULL,
		comment TEXT NOT NULL,
		author_id UUID NOT NULL REFERENCES users(id),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		is_resolved BOOLEAN NOT NULL DEFAULT FALSE
	);`,
	`CREATE INDEX IF NOT EXISTS idx_rejection_comments_entity ON rejection_comments (entity_kind, entity_id);`,
	`CREATE TABLE IF NOT EXISTS sms_logs (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		recipient VARCHAR(15) NOT NULL,
		message TEXT NOT NULL,
		status VARCHAR(16) NOT NULL,
		error_message TEXT NOT NULL DEFAULT '',
		sent_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
}

func runMigrations(db *gorm.DB) error {
	for i, stmt := range migrationStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
